package models

import (
	"time"

	"github.com/google/uuid"
)

// Classified is a member classified ad.
//
// Status is stored as free text. The UI vocabulary is
// active | sold | archived | inactive, but unknown values are kept as-is
// so old rows survive vocabulary changes.
type Classified struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	ContactEmail *string   `json:"contact_email"`
	PhotoURL     *string   `json:"photo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClassifiedFilter is the parsed query surface of the public listing search.
// Nil price bounds mean "no bound"; malformed bounds are dropped during
// parsing, not rejected.
type ClassifiedFilter struct {
	Query    string
	Category string
	Status   string
	MinPrice *float64
	MaxPrice *float64
	Sort     string // newest | price_asc | price_desc
}
