package models

import (
	"time"

	"github.com/google/uuid"
)

// MenteeProfileDB represents a mentee profile record in the database.
// At most one profile exists per user (unique user_id).
type MenteeProfileDB struct {
	ProfileID         uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	CareerGoal        *string   `json:"career_goal" db:"career_goal"`
	PreferredLanguage *string   `json:"preferred_language" db:"preferred_language"`
	CareerStage       *string   `json:"career_stage" db:"career_stage"`
	Location          *string   `json:"location" db:"location"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
	IsActive          bool      `json:"is_active" db:"is_active"`
}
