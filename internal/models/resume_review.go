package models

import "github.com/google/uuid"

// ResumeReviewDB represents resume review artifacts attached to a single session.
// session_id is unique: one resume review per session.
type ResumeReviewDB struct {
	ResumeReviewID uuid.UUID `json:"id" db:"id"`
	SessionID      uuid.UUID `json:"session_id" db:"session_id"`
	ResumeURL      *string   `json:"resume_url" db:"resume_url"`
	ReviewNotes    *string   `json:"review_notes" db:"review_notes"`
}
