package models

import (
	"time"

	"github.com/google/uuid"
)

// UserPlanDB represents an assignment of a pricing plan to a user over a date range
type UserPlanDB struct {
	UserPlanID uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	PlanID     uuid.UUID `json:"plan_id" db:"plan_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	IsActive   bool      `json:"is_active" db:"is_active"`
}
