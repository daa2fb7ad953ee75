package models

import (
	"time"

	"github.com/google/uuid"
)

// JoinRequest is a membership application from the public join form.
type JoinRequest struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Message   *string   `json:"message"`
	Status    string    `json:"status"` // pending | approved | rejected
	CreatedAt time.Time `json:"created_at"`
}
