package checklist

import (
	"fmt"

	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/internal/entity"
)

// template maps one extracted document type to a checklist item. For types
// with a nameKey the template is stamped once per distinct name found in
// last year's entities; with an empty nameKey it produces a single item for
// the whole type.
type template struct {
	nameKey  string
	title    func(name string, year int) string
	desc     func(name string, year int) string
	required bool
	category constants.ItemCategory
}

// templates is keyed by the extracted entity type. Absent keys (OTHER)
// produce nothing. NEC and MISC share a title on purpose; the title dedupe
// collapses the same payer appearing under both.
var templates = map[constants.EntityType]template{
	constants.W2: {
		nameKey: "employer_name",
		title:   func(n string, _ int) string { return fmt.Sprintf("Request W-2 from %s", n) },
		desc: func(_ string, _ int) string {
			return "Contact HR or payroll to receive your W-2 form by January 31st"
		},
		required: true,
		category: constants.CategoryIncome,
	},
	constants.NEC1099: {
		nameKey: "payer_name",
		title:   func(n string, _ int) string { return fmt.Sprintf("Collect 1099 from %s", n) },
		desc: func(_ string, _ int) string {
			return "Download from platform dashboard or wait for mailed copy by January 31st"
		},
		required: true,
		category: constants.CategoryIncome,
	},
	constants.MISC1099: {
		nameKey: "payer_name",
		title:   func(n string, _ int) string { return fmt.Sprintf("Collect 1099 from %s", n) },
		desc: func(_ string, _ int) string {
			return "Download from platform dashboard or wait for mailed copy by January 31st"
		},
		required: true,
		category: constants.CategoryIncome,
	},
	constants.INT1099: {
		nameKey: "payer_name",
		title:   func(n string, _ int) string { return fmt.Sprintf("Obtain 1099-INT from %s", n) },
		desc: func(_ string, y int) string {
			return fmt.Sprintf("Interest income statement for %d", y)
		},
		required: true,
		category: constants.CategoryIncome,
	},
	constants.DIV1099: {
		nameKey: "payer_name",
		title:   func(n string, _ int) string { return fmt.Sprintf("Obtain 1099-DIV from %s", n) },
		desc: func(_ string, y int) string {
			return fmt.Sprintf("Dividend and distributions statement for %d", y)
		},
		required: true,
		category: constants.CategoryIncome,
	},
	constants.Mortgage1098: {
		nameKey: "lender_name",
		title:   func(n string, _ int) string { return fmt.Sprintf("Obtain 1098 from %s", n) },
		desc: func(_ string, _ int) string {
			return "Mortgage interest statement - typically mailed by January 31st"
		},
		required: false,
		category: constants.CategoryDeductions,
	},
	constants.K1: {
		nameKey: "entity_name",
		title:   func(n string, _ int) string { return fmt.Sprintf("Request K-1 from %s", n) },
		desc: func(_ string, _ int) string {
			return "Partnership or S-Corp K-1 - may arrive as late as March"
		},
		required: true,
		category: constants.CategoryIncome,
	},
	constants.Receipt: {
		title: func(_ string, _ int) string { return "Gather business expense receipts" },
		desc: func(_ string, y int) string {
			return fmt.Sprintf("Collect all receipts for business expenses incurred in %d", y)
		},
		required: false,
		category: constants.CategoryDeductions,
	},
}

// standardItems is the baseline everyone gets, personalized run or not.
func standardItems(year int) []entity.ChecklistItem {
	return []entity.ChecklistItem{
		newItem("Charitable donation receipts",
			fmt.Sprintf("Collect all receipts from charitable contributions made during %d", year),
			false, constants.CategoryDeductions),
		newItem("HSA contribution statements",
			fmt.Sprintf("Request from your HSA provider if you made contributions in %d", year),
			false, constants.CategoryDeductions),
		newItem("Childcare provider information",
			"Name, address, and EIN/SSN of childcare providers if claiming credit",
			false, constants.CategoryCredits),
		newItem("Student loan interest statement (1098-E)",
			"Lenders typically mail these by January 31st",
			false, constants.CategoryDeductions),
		newItem("Estimated tax payment records",
			fmt.Sprintf("Gather receipts for any quarterly estimated tax payments made in %d", year),
			false, constants.CategoryOther),
		newItem("Health insurance forms (1095-A, B, or C)",
			"Proof of health insurance coverage for the year",
			false, constants.CategoryOther),
	}
}

func newItem(title, desc string, required bool, category constants.ItemCategory) entity.ChecklistItem {
	return entity.ChecklistItem{
		Title:       title,
		Description: &desc,
		Status:      constants.StatusTodo,
		Required:    required,
		Category:    category,
	}
}
