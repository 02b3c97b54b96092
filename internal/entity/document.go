package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/constants"
)

// Document represents an uploaded file for data transfer between layers.
type Document struct {
	ID          uuid.UUID                `json:"id"`
	HouseholdID uuid.UUID                `json:"household_id"`
	TaxYearID   uuid.UUID                `json:"tax_year_id"`
	Source      constants.DocumentSource `json:"source"`
	Filename    string                   `json:"filename"`
	MIMEType    string                   `json:"mime_type"`
	StoragePath *string                  `json:"storage_path,omitempty"`
	FileSize    *int                     `json:"file_size,omitempty"`
	Parsed      bool                     `json:"parsed"`
	ParseError  *string                  `json:"parse_error,omitempty"`
	UploadedAt  time.Time                `json:"uploaded_at"`
}
