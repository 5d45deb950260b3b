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

// SkillAdder defines the interface that the mentor service must implement.
type SkillAdder interface {
	AddSkill(ctx context.Context, mentorID uuid.UUID, skill string) error
}

// SkillCreateRequest represents the JSON body for adding a mentor skill
// swagger:model SkillCreateRequest
type SkillCreateRequest struct {
	// Mentor user id
	// required: true
	MentorID uuid.UUID `json:"mentor_id" validate:"required"`

	// Skill name
	// required: true
	// example: system design
	Skill string `json:"skill" validate:"required,max=100"`
}

// NewAddSkillHandler returns an HTTP handler for adding a mentor skill.
// @Summary Add mentor skill
// @Description Adds a skill fact for an existing mentor user.
// @Tags mentors
// @Accept json
// @Produce json
// @Param skillCreateRequest body handlers.SkillCreateRequest true "Skill"
// @Success 201 {object} handlers.OkResponse "Skill created"
// @Failure 404 {object} handlers.ErrorResponse "Mentor not found"
// @Router /mentors/skills [post]
func NewAddSkillHandler(svc SkillAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SkillCreateRequest

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

		if err := svc.AddSkill(r.Context(), req.MentorID, req.Skill); err != nil {
			switch {
			case errors.Is(err, services.ErrMentorNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Mentor not found"})
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
