package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEntityType(t *testing.T) {
	for _, s := range []string{"W2", "1099-NEC", "1099-MISC", "1099-INT", "1099-DIV", "1098", "K1", "RECEIPT", "OTHER"} {
		assert.True(t, IsEntityType(s), s)
	}
	assert.False(t, IsEntityType("1099"))
	assert.False(t, IsEntityType("w2"))
	assert.False(t, IsEntityType(""))
}

func TestCanonicalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want ItemCategory
		ok   bool
	}{
		{"income", CategoryIncome, true},
		{"Deductions", CategoryDeductions, true},
		{" credits ", CategoryCredits, true},
		{"other", CategoryOther, true},
		{"misc", CategoryOther, false},
		{"", CategoryOther, false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizeCategory(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestMapMIMEToFormat(t *testing.T) {
	assert.Equal(t, FormatPDF, MapMIMEToFormat("application/pdf"))
	assert.Equal(t, FormatPDF, MapMIMEToFormat(" Application/PDF "))
	assert.Equal(t, FormatImage, MapMIMEToFormat("image/png"))
	assert.Equal(t, FormatImage, MapMIMEToFormat("image/heic"))
	assert.Equal(t, FormatOther, MapMIMEToFormat("text/plain"))
	assert.Equal(t, FormatOther, MapMIMEToFormat(""))
}
