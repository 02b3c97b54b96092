package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/constants"
)

// Entity represents one extracted fact for data transfer between layers.
// Value is nil when extraction was confident a field exists but could not
// read its content. Confidence is on a 0-100 scale.
type Entity struct {
	ID         uuid.UUID            `json:"id"`
	DocumentID uuid.UUID            `json:"document_id"`
	EntityType constants.EntityType `json:"entity_type"`
	Key        string               `json:"key"`
	Value      *string              `json:"value,omitempty"`
	Confidence *float64             `json:"confidence,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}
