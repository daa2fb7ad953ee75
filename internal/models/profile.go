package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the member-editable account profile. Role is read-only through
// the API and drives the admin console gate.
type Profile struct {
	ID               uuid.UUID `json:"id"`
	FullName         *string   `json:"full_name"`
	Phone            *string   `json:"phone"`
	Location         *string   `json:"location"`
	PreferredContact string    `json:"preferred_contact"` // email | phone
	Role             string    `json:"role"`              // member | admin
	UpdatedAt        time.Time `json:"updated_at"`
}
