package extract

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRejectsNonPDFBytes(t *testing.T) {
	e := NewExtractor(Config{}, slog.Default())

	_, err := e.Extract(context.Background(), []byte("plain text, not a pdf"), "notes.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes.pdf")
}

func TestNewExtractorDefaults(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	assert.Equal(t, "pdftotext", e.cfg.Pdftotext)
	assert.NotNil(t, e.logger)
}
