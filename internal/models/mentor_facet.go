package models

import "github.com/google/uuid"

// MentorAvailabilityDB represents a weekly availability slot for a mentor
type MentorAvailabilityDB struct {
	SlotID    uuid.UUID `json:"id" db:"id"`
	MentorID  uuid.UUID `json:"mentor_id" db:"mentor_id"`
	Day       string    `json:"day" db:"day"`               // e.g. "Monday"
	StartTime string    `json:"start_time" db:"start_time"` // HH:MM:SS
	EndTime   string    `json:"end_time" db:"end_time"`     // HH:MM:SS
}

// MentorSkillDB represents a single skill fact for a mentor
type MentorSkillDB struct {
	SkillID  uuid.UUID `json:"id" db:"id"`
	MentorID uuid.UUID `json:"mentor_id" db:"mentor_id"`
	Skill    string    `json:"skill" db:"skill"`
}

// MentorIndustryDB represents a single industry fact for a mentor
type MentorIndustryDB struct {
	IndustryID uuid.UUID `json:"id" db:"id"`
	MentorID   uuid.UUID `json:"mentor_id" db:"mentor_id"`
	Industry   string    `json:"industry" db:"industry"`
}

// MentorLanguageDB represents a single spoken-language fact for a mentor
type MentorLanguageDB struct {
	LanguageID uuid.UUID `json:"id" db:"id"`
	MentorID   uuid.UUID `json:"mentor_id" db:"mentor_id"`
	Language   string    `json:"language" db:"language"`
}
