package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/services"
)

// MentorProfileCreator defines the interface that the mentor service must implement.
type MentorProfileCreator interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, bio, headline, location, timezone *string, hourlyRate *int) error
}

// MentorProfileCreateRequest represents the JSON body for mentor profile creation
// swagger:model MentorProfileCreateRequest
type MentorProfileCreateRequest struct {
	// User id of the mentor
	// required: true
	UserID uuid.UUID `json:"user_id" validate:"required"`

	// Bio
	Bio *string `json:"bio"`

	// Headline
	// example: Staff engineer, ex-FAANG
	Headline *string `json:"headline" validate:"omitempty,max=255"`

	// Location
	Location *string `json:"location" validate:"omitempty,max=100"`

	// Timezone
	// example: Europe/Berlin
	Timezone *string `json:"timezone" validate:"omitempty,max=50"`

	// Hourly rate
	HourlyRate *int `json:"hourly_rate" validate:"omitempty,gte=0"`
}

// NewCreateMentorProfileHandler returns an HTTP handler for mentor profile creation.
// @Summary Create mentor profile
// @Description Creates the 1:1 mentor profile. The user must exist and have the mentor role.
// @Tags mentors
// @Accept json
// @Produce json
// @Param mentorProfileCreateRequest body handlers.MentorProfileCreateRequest true "Mentor profile creation request"
// @Success 201 {object} handlers.OkResponse "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid mentor user_id / Mentor profile already exists"
// @Router /mentors/profiles [post]
func NewCreateMentorProfileHandler(svc MentorProfileCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MentorProfileCreateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request payload"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request payload"})
			return
		}

		err := svc.CreateProfile(r.Context(), req.UserID, req.Bio, req.Headline, req.Location, req.Timezone, req.HourlyRate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidMentorUser):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid mentor user_id"})
			case errors.Is(err, services.ErrMentorProfileExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Mentor profile already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(OkResponse{OK: true})
	}
}
