package constants

import "strings"

// ItemCategory buckets checklist items for display grouping.
type ItemCategory string

const (
	CategoryIncome     ItemCategory = "income"
	CategoryDeductions ItemCategory = "deductions"
	CategoryCredits    ItemCategory = "credits"
	CategoryOther      ItemCategory = "other"
)

var allItemCategories = []ItemCategory{
	CategoryIncome,
	CategoryDeductions,
	CategoryCredits,
	CategoryOther,
}

func ItemCategoryStrings() []string {
	result := make([]string, len(allItemCategories))
	for i, c := range allItemCategories {
		result[i] = string(c)
	}
	return result
}

// CanonicalizeCategory maps free-form input to the closed category set.
// Unrecognized labels fall back to CategoryOther.
func CanonicalizeCategory(input string) (ItemCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, c := range allItemCategories {
		if normalized == string(c) {
			return c, true
		}
	}
	return CategoryOther, false
}
