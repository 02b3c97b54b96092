package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPromptTruncatesText(t *testing.T) {
	long := strings.Repeat("x", MaxPromptChars+500)
	p := BuildUserPrompt(ExtractRequest{Text: long, Filename: "big.pdf"})

	assert.NotContains(t, p, strings.Repeat("x", MaxPromptChars+1))
	assert.Contains(t, p, strings.Repeat("x", MaxPromptChars))
}

func TestBuildUserPromptIsDeterministic(t *testing.T) {
	req := ExtractRequest{Text: "Form W-2 Wage and Tax Statement", Filename: "w2.pdf"}
	assert.Equal(t, BuildUserPrompt(req), BuildUserPrompt(req))
}

func TestBuildUserPromptMentionsAllTypes(t *testing.T) {
	p := BuildUserPrompt(ExtractRequest{Text: "text", Filename: "f.pdf"})
	for _, typ := range []string{"W2", "1099-NEC", "1099-MISC", "1099-INT", "1099-DIV", "1098", "K1", "RECEIPT", "OTHER"} {
		assert.Contains(t, p, typ)
	}
	// checklist generation keys off these field names
	for _, key := range []string{"employer_name", "payer_name", "lender_name", "entity_name"} {
		assert.Contains(t, p, key)
	}
	assert.Contains(t, p, "w2.pdf")
}

func TestFallbackClipsLongValues(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := FallbackAnalysis(long+".pdf", nil)
	fn := got.Field(KeyFilename)
	assert.Len(t, *fn, 100)
}
