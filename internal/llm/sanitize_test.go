package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalize(t *testing.T, raw string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAnalysisJSON([]byte(raw), nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestNormalizeStripsCodeFences(t *testing.T) {
	m := normalize(t, "```json\n{\"entityType\": \"W2\", \"fields\": []}\n```")
	assert.Equal(t, "W2", m["entityType"])
}

func TestNormalizeRenamesSynonyms(t *testing.T) {
	for _, raw := range []string{
		`{"entity_type": "W2", "fields": []}`,
		`{"documentType": "W2", "fields": []}`,
		`{"type": "W2", "fields": []}`,
	} {
		m := normalize(t, raw)
		assert.Equal(t, "W2", m["entityType"], "input: %s", raw)
		assert.NotContains(t, m, "entity_type")
	}
}

func TestNormalizeUppercasesEntityType(t *testing.T) {
	m := normalize(t, `{"entityType": " w2 ", "fields": []}`)
	assert.Equal(t, "W2", m["entityType"])
}

func TestNormalizeCoercesFieldValues(t *testing.T) {
	m := normalize(t, `{"entityType": "W2", "fields": [
		{"key": "wages", "value": 85000.5, "confidence": 90},
		{"key": "is_corrected", "value": false, "confidence": 80},
		{"key": "state_conf", "value": "CA", "confidence": "77"}
	]}`)

	fields := m["fields"].([]any)
	require.Len(t, fields, 3)
	assert.Equal(t, "85000.5", fields[0].(map[string]any)["value"])
	assert.Equal(t, "false", fields[1].(map[string]any)["value"])
	assert.Equal(t, 77.0, fields[2].(map[string]any)["confidence"])
}

func TestNormalizeDropsMalformedFields(t *testing.T) {
	out, dropped, err := NormalizeAnalysisJSON([]byte(`{"entityType": "W2", "fields": [
		"not an object",
		{"value": "no key", "confidence": 90},
		{"key": "no_confidence", "value": "x"},
		{"key": "bad_confidence", "value": "x", "confidence": "high"},
		{"key": "good", "value": "x", "confidence": 90}
	]}`), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	fields := m["fields"].([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "good", fields[0].(map[string]any)["key"])
}

func TestNormalizeRemovesUnknownTopLevelKeys(t *testing.T) {
	m := normalize(t, `{"entityType": "W2", "fields": [], "reasoning": "because"}`)
	assert.NotContains(t, m, "reasoning")
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	_, _, err := NormalizeAnalysisJSON([]byte("I could not find any tax data."), nil)
	assert.Error(t, err)
}

func TestStripCodeFencesPassThrough(t *testing.T) {
	raw := []byte(`{"entityType": "W2"}`)
	assert.Equal(t, raw, StripCodeFences(raw))
}

func TestDropLowConfidenceFields(t *testing.T) {
	v := "x"
	a := DocumentAnalysis{Fields: []ExtractedField{
		{Key: "keep", Value: &v, Confidence: 50},
		{Key: "drop", Value: &v, Confidence: 49.9},
		{Key: "keep2", Value: &v, Confidence: 100},
	}}

	out, removed := DropLowConfidenceFields(a)
	assert.Equal(t, 1, removed)
	require.Len(t, out.Fields, 2)
	assert.Equal(t, "keep", out.Fields[0].Key)
	assert.Equal(t, "keep2", out.Fields[1].Key)
}
