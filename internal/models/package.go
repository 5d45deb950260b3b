package models

import (
	"time"

	"github.com/google/uuid"
)

// PackageDB represents a bundled session offering published by a mentor
type PackageDB struct {
	PackageID   uuid.UUID `json:"id" db:"id"`
	MentorID    uuid.UUID `json:"mentor_id" db:"mentor_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Price       int       `json:"price" db:"price"`
	Duration    int       `json:"duration" db:"duration"` // minutes
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
