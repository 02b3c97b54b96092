package llm

import (
	"encoding/json"
	"strings"

	"github.com/taxflow-app/taxflow/constants"
)

// MaxPromptChars bounds how much document text is sent to the model. The
// model has a context limit; truncation keeps the first N characters so the
// same document always produces the same prompt.
const MaxPromptChars = 4000

// BuildSystemPrompt returns the fixed system message for document analysis.
func BuildSystemPrompt() string {
	return "You are a precise tax document analyzer. Always respond with valid JSON only."
}

// BuildUserPrompt composes the analysis instruction: filename hint, truncated
// document text, the output contract, the type-detection priority list, and
// per-type field guidance. The detection rules are ordered; the first marker
// that matches wins, and OTHER is the default when none match.
func BuildUserPrompt(req ExtractRequest) string {
	text := req.Text
	if len(text) > MaxPromptChars {
		text = text[:MaxPromptChars]
	}

	var b strings.Builder
	b.WriteString("Analyze the following document text and extract structured information.\n\n")
	b.WriteString("Document Filename: ")
	b.WriteString(req.Filename)
	b.WriteString("\nDocument Text:\n")
	b.WriteString(text)
	b.WriteString("\n\nIMPORTANT: Respond with a valid JSON object only, no additional text.\n\n")

	b.WriteString("Your response must follow this exact format:\n")
	b.WriteString(`{
  "entityType": "` + strings.Join(constants.EntityTypeStrings(), `" | "`) + `",
  "fields": [
    {
      "key": "field_name",
      "value": "field_value",
      "confidence": 95
    }
  ]
}` + "\n\n")

	b.WriteString(`Document Type Detection Rules (apply in order, first match wins):
- W2: Look for "Wage and Tax Statement", "Form W-2", boxes 1-20
- 1099-NEC: Look for "Nonemployee Compensation", "Form 1099-NEC"
- 1099-MISC: Look for "Miscellaneous Information", "Form 1099-MISC"
- 1099-INT: Look for "Interest Income", "Form 1099-INT"
- 1099-DIV: Look for "Dividends and Distributions", "Form 1099-DIV"
- 1098: Look for "Mortgage Interest Statement", "Form 1098"
- K1: Look for "Schedule K-1", "Partner's Share"
- RECEIPT: Look for receipt indicators (store names, transaction IDs, totals)
- OTHER: If none of the above match
`)
	b.WriteString("\nField Extraction Guidelines by Type:\n\n")
	b.WriteString(fieldGuidance)
	b.WriteString(`
Confidence scores (0-100):
- 90-100: Very clear and explicit in document
- 70-89: Clearly visible but requires some interpretation
- 50-69: Partially visible or inferred
- Below 50: Uncertain or guessed

Extract all relevant fields you can identify with confidence > 50.`)

	return b.String()
}

// fieldGuidance names the fields the model should look for per document type.
// The checklist generator keys off some of these (employer_name, payer_name,
// lender_name, entity_name), so they are part of the contract.
const fieldGuidance = `W2 Fields:
- employer_name
- employer_ein
- employee_name
- employee_ssn (mask as ***-**-XXXX)
- wages_tips_compensation (box 1)
- federal_income_tax_withheld (box 2)
- social_security_wages (box 3)
- social_security_tax_withheld (box 4)
- medicare_wages (box 5)
- medicare_tax_withheld (box 6)
- state
- state_wages
- state_income_tax
- tax_year

1099-NEC Fields:
- payer_name
- payer_ein
- payer_address
- recipient_name
- recipient_tin (mask as ***-**-XXXX)
- nonemployee_compensation (box 1)
- federal_income_tax_withheld (box 4)
- state_tax_withheld
- tax_year

1099-MISC Fields:
- payer_name
- payer_ein
- recipient_name
- recipient_tin
- rents (box 1)
- royalties (box 2)
- other_income (box 3)
- federal_income_tax_withheld (box 4)
- tax_year

1099-INT Fields:
- payer_name
- payer_ein
- recipient_name
- recipient_tin
- interest_income (box 1)
- early_withdrawal_penalty (box 2)
- federal_income_tax_withheld (box 4)
- tax_year

1099-DIV Fields:
- payer_name
- payer_ein
- recipient_name
- recipient_tin
- total_ordinary_dividends (box 1a)
- qualified_dividends (box 1b)
- total_capital_gain (box 2a)
- federal_income_tax_withheld (box 4)
- tax_year

1098 Fields:
- lender_name
- lender_ein
- lender_address
- borrower_name
- borrower_tin
- mortgage_interest_received (box 1)
- outstanding_mortgage_principal (box 2)
- mortgage_origination_date (box 3)
- property_address
- tax_year

K1 Fields:
- entity_name
- entity_ein
- partner_name
- partner_ssn
- entity_type (partnership/s_corp)
- ordinary_business_income
- rental_income
- interest_income
- tax_year

RECEIPT Fields:
- vendor_name
- transaction_date
- total_amount
- category (meals, office, supplies, travel, etc.)
- payment_method
- description
`

// SchemaJSON renders the output schema for embedding in a prompt.
func SchemaJSON() string {
	b, _ := json.MarshalIndent(BuildAnalysisJSONSchema(), "", "  ")
	return string(b)
}
