package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Extract runs the embedded-text path: validate the PDF structure with
// pdfcpu, then stream the bytes through pdftotext. Scanned PDFs come back
// with little or no text; that is reported as a warning, not an error, so
// the caller can still run classification on whatever was found.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (ExtractionResult, error) {
	start := time.Now()
	res := ExtractionResult{Method: "pdf-text"}

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		e.logger.Error("pdf structure check failed", "filename", filename, "error", err)
		return res, fmt.Errorf("invalid pdf %q: %w", filename, err)
	}
	if e.cfg.MaxPages > 0 && pages > e.cfg.MaxPages {
		res.Warnings = append(res.Warnings, fmt.Sprintf("document has %d pages, limit is %d", pages, e.cfg.MaxPages))
	}

	text, warns, err := e.pdfToText(ctx, data)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		return res, fmt.Errorf("pdftotext %q: %w", filename, err)
	}

	res.Text = text
	res.Pages = pages
	res.Duration = time.Since(start)
	if strings.TrimSpace(text) == "" {
		res.Warnings = append(res.Warnings, "no embedded text found; document may be scanned")
	}

	e.logger.Debug("pdf text extracted",
		"filename", filename,
		"pages", pages,
		"text_len", len(text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) pdfToText(ctx context.Context, data []byte) (text string, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix - -
	out, errb, err := e.runner.RunWithInput(ctx, data, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", "-", "-")
	if err != nil {
		return "", []string{string(errb)}, err
	}
	return string(out), nil, nil
}
