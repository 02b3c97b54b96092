package llm

import "github.com/taxflow-app/taxflow/constants"

// MinFieldConfidence is the floor below which extracted fields are dropped
// rather than emitted as low-confidence noise.
const MinFieldConfidence = 50

// BuildAnalysisJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as the output contract and also use
// it locally to validate the response.
func BuildAnalysisJSONSchema() map[string]any {
	fieldProps := map[string]any{
		"key": map[string]any{"type": "string", "minLength": 1},
		// null means "field exists, content unreadable"
		"value":      map[string]any{"type": []string{"string", "null"}},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"entityType": map[string]any{
				"type": "string",
				"enum": constants.EntityTypeStrings(),
			},
			"fields": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           fieldProps,
					"required":             []string{"key", "value", "confidence"},
				},
			},
		},
		"required": []string{"entityType", "fields"},
	}
}
