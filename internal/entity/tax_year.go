package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/constants"
)

// TaxYear represents one household filing year for data transfer between layers.
type TaxYear struct {
	ID          uuid.UUID               `json:"id"`
	HouseholdID uuid.UUID               `json:"household_id"`
	Year        int                     `json:"year"`
	Status      constants.TaxYearStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}
