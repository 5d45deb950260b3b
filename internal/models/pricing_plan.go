package models

import (
	"time"

	"github.com/google/uuid"
)

// Values of the plan_duration enum column.
const (
	PlanMonthly   = "monthly"
	PlanQuarterly = "quarterly"
	PlanYearly    = "yearly"
)

// PricingPlanDB represents a purchasable subscription tier
type PricingPlanDB struct {
	PlanID      uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       int       `json:"price" db:"price"`
	Duration    string    `json:"duration" db:"duration"` // monthly | quarterly | yearly
	Features    *string   `json:"features" db:"features"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
