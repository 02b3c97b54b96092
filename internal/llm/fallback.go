package llm

import "github.com/taxflow-app/taxflow/constants"

// Deterministic field keys emitted when no real extraction happened.
const (
	KeyFilename        = "filename"
	KeyExtractionError = "extraction_error"
	KeyNote            = "note"
)

const imageNote = "Image parsing not yet implemented. Upload PDFs for best results."

// maxFallbackValueLen caps fallback values; error chains can run long.
const maxFallbackValueLen = 100

// FallbackAnalysis is the degraded-but-valid result for a failed model call:
// type OTHER with the filename and the failure message, both at confidence
// 100 because they are not model output. The pipeline always has something
// to persist and never silently loses a document.
func FallbackAnalysis(filename string, cause error) DocumentAnalysis {
	msg := "Unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	return DocumentAnalysis{
		EntityType: constants.Other,
		Fields: []ExtractedField{
			{Key: KeyFilename, Value: strPtr(clip(filename)), Confidence: 100},
			{Key: KeyExtractionError, Value: strPtr(clip(msg)), Confidence: 100},
		},
	}
}

// PlaceholderAnalysis is emitted for non-PDF uploads, where text extraction
// is a no-op until OCR lands.
func PlaceholderAnalysis(filename string) DocumentAnalysis {
	return DocumentAnalysis{
		EntityType: constants.Other,
		Fields: []ExtractedField{
			{Key: KeyFilename, Value: strPtr(clip(filename)), Confidence: 100},
			{Key: KeyNote, Value: strPtr(clip(imageNote)), Confidence: 100},
		},
	}
}

func clip(s string) string {
	if len(s) <= maxFallbackValueLen {
		return s
	}
	return s[:maxFallbackValueLen]
}

func strPtr(s string) *string { return &s }
