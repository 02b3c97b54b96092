package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/taxflow-app/taxflow/internal/llm"
)

// AnalyzeDocument implements llm.DocumentAnalyzer with a single JSON-mode
// chat completion. Errors are returned raw; the fallback policy lives in
// llm.Classifier, not here.
func (c *Client) AnalyzeDocument(ctx context.Context, req llm.ExtractRequest) (llm.DocumentAnalysis, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"filename", req.Filename,
	)

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: llm.BuildSystemPrompt()},
			{Role: goopenai.ChatMessageRoleUser, Content: llm.BuildUserPrompt(req)},
		},
	})
	if err != nil {
		c.logger.Error("llm.analyze.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentAnalysis{}, nil, err
	}
	if len(resp.Choices) == 0 {
		c.logger.Error("llm.analyze.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentAnalysis{}, nil, fmt.Errorf("no choices in model response")
	}
	rawContent := []byte(resp.Choices[0].Message.Content)

	cleaned, dropped, err := llm.NormalizeAnalysisJSON(rawContent, c.logger)
	if err != nil {
		c.logger.Error("llm.analyze.sanitize_failed",
			"req_id", rid, "error", err, "raw_bytes", len(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentAnalysis{}, rawContent, fmt.Errorf("sanitize model output: %w", err)
	}
	if len(dropped) > 0 {
		c.logger.Warn("llm.analyze.sanitize_applied", "req_id", rid, "dropped", dropped)
	}

	schema := llm.BuildAnalysisJSONSchema()
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.logger.Error("llm.analyze.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentAnalysis{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.DocumentAnalysis
	if err := json.Unmarshal(cleaned, &out); err != nil {
		c.logger.Error("llm.analyze.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.DocumentAnalysis{}, cleaned, fmt.Errorf("unmarshal analysis: %w", err)
	}

	out, removed := llm.DropLowConfidenceFields(out)
	if removed > 0 {
		c.logger.Info("llm.analyze.low_confidence_dropped", "req_id", rid, "removed", removed)
	}

	c.logger.Info("llm.analyze.ok",
		"req_id", rid,
		"entity_type", out.EntityType,
		"fields", len(out.Fields),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}
