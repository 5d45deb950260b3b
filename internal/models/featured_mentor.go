package models

import (
	"time"

	"github.com/google/uuid"
)

// FeaturedMentorDB represents a mentor promoted on the marketplace landing page
type FeaturedMentorDB struct {
	FeaturedID    uuid.UUID  `json:"id" db:"id"`
	MentorID      uuid.UUID  `json:"mentor_id" db:"mentor_id"`
	Headline      *string    `json:"headline" db:"headline"`
	Skills        *string    `json:"skills" db:"skills"`
	HourlyRate    *int       `json:"hourly_rate" db:"hourly_rate"`
	FeaturedSince *time.Time `json:"featured_since" db:"featured_since"`
}
