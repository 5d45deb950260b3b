package models

import (
	"time"

	"github.com/google/uuid"
)

// EarningDB represents a monthly income aggregate for a mentor.
// Rows are unique per (mentor_id, month).
type EarningDB struct {
	EarningID        uuid.UUID `json:"id" db:"id"`
	MentorID         uuid.UUID `json:"mentor_id" db:"mentor_id"`
	Month            string    `json:"month" db:"month"` // 'YYYY-MM'
	MentorshipIncome int       `json:"mentorship_income" db:"mentorship_income"`
	FreelanceIncome  int       `json:"freelance_income" db:"freelance_income"`
	TotalIncome      int       `json:"total_income" db:"total_income"`
	GrowthPercent    float64   `json:"growth_percent" db:"growth_percent"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
