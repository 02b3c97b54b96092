package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// NormalizeAnalysisJSON repairs near-miss model output before schema validation:
//   - strips markdown code fences around the JSON body
//   - renames known synonyms (entity_type -> entityType)
//   - coerces numeric-string confidences to numbers and numeric values to strings
//   - drops fields that are not objects or lack a usable key
//   - removes unknown keys at both levels (additionalProperties = false friendliness)
func NormalizeAnalysisJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	body := StripCodeFences(raw)

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	// rename synonyms to our schema
	for _, from := range []string{"entity_type", "documentType", "type"} {
		if v, ok := m[from]; ok {
			if _, exists := m["entityType"]; !exists {
				m["entityType"] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->entityType")
		}
	}

	if v, ok := m["entityType"].(string); ok {
		m["entityType"] = strings.ToUpper(strings.TrimSpace(v))
	}

	// fields: keep only well-formed {key, value, confidence} objects
	if rawFields, ok := m["fields"].([]any); ok {
		cleaned := make([]any, 0, len(rawFields))
		for i, rf := range rawFields {
			f, ok := rf.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("fields[%d](type)", i))
				continue
			}
			key, _ := f["key"].(string)
			key = strings.TrimSpace(key)
			if key == "" {
				dropped = append(dropped, fmt.Sprintf("fields[%d](no key)", i))
				continue
			}

			out := map[string]any{"key": key}

			switch v := f["value"].(type) {
			case nil:
				out["value"] = nil
			case string:
				out["value"] = strings.TrimSpace(v)
			case float64:
				out["value"] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				out["value"] = strconv.FormatBool(v)
			default:
				out["value"] = nil
				dropped = append(dropped, key+".value(type)")
			}

			switch c := f["confidence"].(type) {
			case float64:
				out["confidence"] = c
			case string:
				parsed, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
				if err != nil {
					dropped = append(dropped, key+".confidence(unparseable)")
					continue
				}
				out["confidence"] = parsed
			default:
				dropped = append(dropped, key+".confidence(missing)")
				continue
			}

			cleaned = append(cleaned, out)
		}
		m["fields"] = cleaned
	}

	// remove unknown top-level keys
	for k := range m {
		if k != "entityType" && k != "fields" {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.analyze.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// StripCodeFences removes a surrounding ```json ... ``` (or plain ```) block.
// Models occasionally fence their output even when asked for raw JSON.
func StripCodeFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// DropLowConfidenceFields removes fields scored below MinFieldConfidence.
// The extractor must filter, not merely warn.
func DropLowConfidenceFields(a DocumentAnalysis) (DocumentAnalysis, int) {
	kept := a.Fields[:0:0]
	removed := 0
	for _, f := range a.Fields {
		if f.Confidence < MinFieldConfidence {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	a.Fields = kept
	return a, removed
}
