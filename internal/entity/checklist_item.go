package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/constants"
)

// ChecklistItem represents one action row for a tax year.
type ChecklistItem struct {
	ID          uuid.UUID              `json:"id"`
	TaxYearID   uuid.UUID              `json:"tax_year_id"`
	Title       string                 `json:"title"`
	Description *string                `json:"description,omitempty"`
	Status      constants.ItemStatus   `json:"status"`
	Required    bool                   `json:"required"`
	Category    constants.ItemCategory `json:"category"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
