package llm

import (
	"context"

	"github.com/taxflow-app/taxflow/constants"
)

// ExtractedField is one (key, value, confidence) triple from the model.
// Value may be null when the model is confident a field exists but could
// not read its content.
type ExtractedField struct {
	Key        string  `json:"key"`
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
}

// DocumentAnalysis is the normalized shape we want from the model:
// exactly one entity type and the fields extracted for it.
type DocumentAnalysis struct {
	EntityType constants.EntityType `json:"entityType"`
	Fields     []ExtractedField     `json:"fields"`
}

type ExtractRequest struct {
	Text     string // plain text from the text extractor
	Filename string // weak classification hint only
}

// DocumentAnalyzer is the interface the pipeline depends on. One outbound
// model call per invocation; no retries inside.
type DocumentAnalyzer interface {
	AnalyzeDocument(ctx context.Context, req ExtractRequest) (DocumentAnalysis, []byte /*rawJSON*/, error)
}

// Field returns the value of the first field with the given key, or nil.
func (a DocumentAnalysis) Field(key string) *string {
	for _, f := range a.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}
