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

// MenteeProfileCreator defines the interface that the mentee service must implement.
type MenteeProfileCreator interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, careerGoal, preferredLanguage, careerStage, location *string) error
}

// MenteeProfileCreateRequest represents the JSON body for mentee profile creation
// swagger:model MenteeProfileCreateRequest
type MenteeProfileCreateRequest struct {
	// User id of the mentee
	// required: true
	UserID uuid.UUID `json:"user_id" validate:"required"`

	// Career goal
	CareerGoal *string `json:"career_goal"`

	// Preferred language
	// example: English
	PreferredLanguage *string `json:"preferred_language" validate:"omitempty,max=50"`

	// Career stage
	// example: early career
	CareerStage *string `json:"career_stage" validate:"omitempty,max=100"`

	// Location
	Location *string `json:"location" validate:"omitempty,max=100"`
}

// NewCreateMenteeProfileHandler returns an HTTP handler for mentee profile creation.
// @Summary Create mentee profile
// @Description Creates the 1:1 mentee profile. The user must exist and have the mentee role.
// @Tags mentees
// @Accept json
// @Produce json
// @Param menteeProfileCreateRequest body handlers.MenteeProfileCreateRequest true "Mentee profile creation request"
// @Success 201 {object} handlers.OkResponse "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid mentee user_id / Mentee profile already exists"
// @Router /mentees/profiles [post]
func NewCreateMenteeProfileHandler(svc MenteeProfileCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MenteeProfileCreateRequest

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

		err := svc.CreateProfile(r.Context(), req.UserID, req.CareerGoal, req.PreferredLanguage, req.CareerStage, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidMenteeUser):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid mentee user_id"})
			case errors.Is(err, services.ErrMenteeProfileExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Mentee profile already exists"})
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
