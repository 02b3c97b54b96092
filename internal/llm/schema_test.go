package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaAcceptsValidPayload(t *testing.T) {
	schema := BuildAnalysisJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{
		"entityType": "1099-NEC",
		"fields": [
			{"key": "payer_name", "value": "Globex LLC", "confidence": 92},
			{"key": "recipient_tin", "value": null, "confidence": 60}
		]
	}`))
	assert.NoError(t, err)
}

func TestSchemaAcceptsEmptyFields(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), []byte(`{"entityType": "OTHER", "fields": []}`))
	assert.NoError(t, err)
}

func TestSchemaRejectsInvalidPayloads(t *testing.T) {
	cases := map[string]string{
		"unknown type":        `{"entityType": "W9", "fields": []}`,
		"missing fields":      `{"entityType": "W2"}`,
		"missing entity type": `{"fields": []}`,
		"empty key":           `{"entityType": "W2", "fields": [{"key": "", "value": "x", "confidence": 90}]}`,
		"confidence over 100": `{"entityType": "W2", "fields": [{"key": "k", "value": "x", "confidence": 101}]}`,
		"negative confidence": `{"entityType": "W2", "fields": [{"key": "k", "value": "x", "confidence": -1}]}`,
		"numeric value":       `{"entityType": "W2", "fields": [{"key": "k", "value": 5, "confidence": 90}]}`,
		"extra property":      `{"entityType": "W2", "fields": [], "notes": "hi"}`,
	}
	schema := BuildAnalysisJSONSchema()
	for name, payload := range cases {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(payload)), name)
	}
}

func TestSchemaCoversAllEntityTypes(t *testing.T) {
	schema := BuildAnalysisJSONSchema()
	enum := schema["properties"].(map[string]any)["entityType"].(map[string]any)["enum"].([]string)
	require.Len(t, enum, 9)
	assert.Contains(t, enum, "1099-MISC")
	assert.Contains(t, enum, "RECEIPT")
}
