package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the liveness probe response
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
	// example: Service is healthy
	Message string `json:"message"`
	// example: 2025-01-02T15:04:05Z
	Time string `json:"time"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags misc
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:  "ok",
			Message: "Service is healthy",
			Time:    time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// NewRootHandler returns a trivial root handler.
// @Summary Root
// @Tags misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "hello from root"})
	}
}
