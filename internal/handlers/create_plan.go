package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
)

// PlanCreator defines the interface that the pricing service must implement.
type PlanCreator interface {
	CreatePlan(ctx context.Context, name string, description *string, price int, duration string, features *string) (uuid.UUID, error)
}

// PlanCreateRequest represents the JSON body for creating a pricing plan
// swagger:model PlanCreateRequest
type PlanCreateRequest struct {
	// Plan name
	// required: true
	// example: Pro
	Name string `json:"name" validate:"required,max=100"`

	// Description
	Description *string `json:"description"`

	// Price in whole currency units
	// required: true
	Price int `json:"price" validate:"gte=0"`

	// Billing period
	// required: true
	// example: monthly
	Duration string `json:"duration" validate:"required,oneof=monthly quarterly yearly"`

	// Feature list, comma separated
	Features *string `json:"features"`
}

// NewCreatePlanHandler returns an HTTP handler for creating a pricing plan.
// @Summary Create pricing plan
// @Description Creates a pricing plan. No uniqueness constraints apply.
// @Tags pricing
// @Accept json
// @Produce json
// @Param planCreateRequest body handlers.PlanCreateRequest true "Plan creation request"
// @Success 201 {object} handlers.IDResponse "Plan created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload"
// @Router /pricing/plans [post]
func NewCreatePlanHandler(svc PlanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlanCreateRequest

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

		id, err := svc.CreatePlan(r.Context(), req.Name, req.Description, req.Price, req.Duration, req.Features)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(IDResponse{ID: id})
	}
}
