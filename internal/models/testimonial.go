package models

import (
	"time"

	"github.com/google/uuid"
)

// TestimonialDB represents a public quote from a mentee about a mentor
type TestimonialDB struct {
	TestimonialID uuid.UUID `json:"id" db:"id"`
	MenteeID      uuid.UUID `json:"mentee_id" db:"mentee_id"`
	MentorID      uuid.UUID `json:"mentor_id" db:"mentor_id"`
	Quote         *string   `json:"quote" db:"quote"`
	Rating        int       `json:"rating" db:"rating"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	IsActive      bool      `json:"is_active" db:"is_active"`
}
