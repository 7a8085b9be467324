package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Artist represents an artist profile in the catalog
type Artist struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Genre     string      `json:"genre"`
	Country   string      `json:"country"`
	ImageURL  null.String `json:"imageUrl,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
