package constants

import "strings"

// MIMEPDF is the only MIME type routed through text extraction; everything
// else takes the placeholder path (OCR is a future drop-in).
const MIMEPDF = "application/pdf"

// Formats stored on extract results.
const (
	FormatPDF   = "PDF"
	FormatImage = "IMAGE"
	FormatOther = "OTHER"
)

// MapMIMEToFormat classifies a declared MIME type into a coarse format.
func MapMIMEToFormat(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case mt == MIMEPDF:
		return FormatPDF
	case strings.HasPrefix(mt, "image/"):
		return FormatImage
	default:
		return FormatOther
	}
}
