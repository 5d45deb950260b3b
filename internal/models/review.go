package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a session review left by a mentee
type ReviewDB struct {
	ReviewID  uuid.UUID `json:"id" db:"id"`
	SessionID uuid.UUID `json:"session_id" db:"session_id"`
	MenteeID  uuid.UUID `json:"mentee_id" db:"mentee_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   *string   `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
