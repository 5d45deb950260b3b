package models

import "github.com/google/uuid"

// Values of the preference_session_type enum column.
const (
	PreferenceIndividual = "individual"
	PreferenceGroup      = "group"
)

// Values of the budget_range enum column.
const (
	BudgetFree = "free"
	BudgetLow  = "199-499"
	BudgetHigh = "500+"
)

// MenteePreferenceDB represents matching preferences attached to a mentee profile
type MenteePreferenceDB struct {
	PreferenceID   uuid.UUID `json:"id" db:"id"`
	MenteeID       uuid.UUID `json:"mentee_id" db:"mentee_id"` // references mentee_profiles.id
	Interests      *string   `json:"interests" db:"interests"`
	PreferredModes *string   `json:"preferred_modes" db:"preferred_modes"` // "chat,video,resume_review,mock"
	SessionType    *string   `json:"session_type" db:"session_type"`       // individual | group
	TimeSlots      *string   `json:"time_slots" db:"time_slots"`
	BudgetRange    *string   `json:"budget_range" db:"budget_range"` // free | 199-499 | 500+
}
