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

// UserCreator defines the interface that the user service must implement.
type UserCreator interface {
	Create(ctx context.Context, firstName, lastName *string, email, password, role string) (uuid.UUID, error)
}

// UserCreateRequest represents the JSON body for user creation
// swagger:model UserCreateRequest
type UserCreateRequest struct {
	// First name
	// example: Jane
	FirstName *string `json:"first_name"`

	// Last name
	// example: Doe
	LastName *string `json:"last_name"`

	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Password credential
	// required: true
	PasswordHash string `json:"password_hash" validate:"required"`

	// Role
	// required: true
	// example: mentee
	Role string `json:"role" validate:"required,oneof=mentee mentor admin"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a user with a unique email. The email domain must have MX records; the credential is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param userCreateRequest body handlers.UserCreateRequest true "User creation request"
// @Success 201 {object} handlers.UserResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Email already exists / invalid payload"
// @Router /users/ [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserCreateRequest

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

		id, err := svc.Create(r.Context(), req.FirstName, req.LastName, req.Email, req.PasswordHash, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email already exists"})
			case errors.Is(err, services.ErrInvalidEmailDomain):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid email domain"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UserResponse{
			ID:    id,
			Email: req.Email,
			Role:  req.Role,
		})
	}
}
