package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxflow-app/taxflow/constants"
)

type stubAnalyzer struct {
	analysis DocumentAnalysis
	raw      []byte
	err      error
	calls    int
}

func (s *stubAnalyzer) AnalyzeDocument(_ context.Context, _ ExtractRequest) (DocumentAnalysis, []byte, error) {
	s.calls++
	return s.analysis, s.raw, s.err
}

func TestClassifyAndExtractSuccess(t *testing.T) {
	v := "Acme Corp"
	stub := &stubAnalyzer{analysis: DocumentAnalysis{
		EntityType: constants.W2,
		Fields:     []ExtractedField{{Key: "employer_name", Value: &v, Confidence: 95}},
	}}
	c := NewClassifier(stub, nil)

	got, err := c.ClassifyAndExtract(context.Background(), "Form W-2", "w2.pdf")
	require.NoError(t, err)
	assert.Equal(t, constants.W2, got.EntityType)
	assert.Equal(t, 1, stub.calls)
}

func TestClassifyAndExtractFallsBackOnError(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("model returned prose")}
	c := NewClassifier(stub, nil)

	got, err := c.ClassifyAndExtract(context.Background(), "gibberish", "scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, constants.Other, got.EntityType)

	fn := got.Field(KeyFilename)
	require.NotNil(t, fn)
	assert.Equal(t, "scan.pdf", *fn)

	msg := got.Field(KeyExtractionError)
	require.NotNil(t, msg)
	assert.Equal(t, "model returned prose", *msg)
}

func TestClassifyAndExtractPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stub := &stubAnalyzer{err: ctx.Err()}
	c := NewClassifier(stub, nil)

	_, err := c.ClassifyAndExtract(ctx, "text", "w2.pdf")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFallbackAnalysisNilCause(t *testing.T) {
	got := FallbackAnalysis("doc.pdf", nil)
	msg := got.Field(KeyExtractionError)
	require.NotNil(t, msg)
	assert.Equal(t, "Unknown error", *msg)
}

func TestPlaceholderAnalysis(t *testing.T) {
	got := PlaceholderAnalysis("photo.heic")
	assert.Equal(t, constants.Other, got.EntityType)
	note := got.Field(KeyNote)
	require.NotNil(t, note)
	assert.Equal(t, "Image parsing not yet implemented. Upload PDFs for best results.", *note)
}
