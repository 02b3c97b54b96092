package llm

import (
	"context"
	"log/slog"
)

// Classifier wraps a DocumentAnalyzer with the degraded-fallback policy:
// transport errors, malformed output, and schema violations never propagate
// to the caller; they become an OTHER-typed analysis instead. Context
// cancellation is the one exception — it is returned as-is so the caller can
// abort without committing anything.
type Classifier struct {
	analyzer DocumentAnalyzer
	logger   *slog.Logger
}

func NewClassifier(analyzer DocumentAnalyzer, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{analyzer: analyzer, logger: logger}
}

// ClassifyAndExtract makes a single best-effort model call. Retry policy, if
// any, belongs to the caller.
func (c *Classifier) ClassifyAndExtract(ctx context.Context, text, filename string) (DocumentAnalysis, error) {
	analysis, raw, err := c.analyzer.AnalyzeDocument(ctx, ExtractRequest{Text: text, Filename: filename})
	if err != nil {
		if ctx.Err() != nil {
			return DocumentAnalysis{}, ctx.Err()
		}
		c.logger.Warn("llm.classify.fallback",
			"filename", filename,
			"error", err,
			"raw_bytes", len(raw),
		)
		return FallbackAnalysis(filename, err), nil
	}
	return analysis, nil
}
