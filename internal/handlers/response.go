package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/models"
)

// validate is the shared validator for request payloads. A request is
// rejected as a whole if any field fails its constraints.
var validate = validator.New()

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Email already exists
	Error string `json:"error"`
}

// OkResponse represents a minimal success acknowledgement
// swagger:model OkResponse
type OkResponse struct {
	// example: true
	OK bool `json:"ok"`
}

// IDResponse carries the id of a newly created record
// swagger:model IDResponse
type IDResponse struct {
	// example: 6a5f9c1e-0b2d-4c63-9a7e-1f2d3c4b5a69
	ID uuid.UUID `json:"id"`
}

// UserResponse is the public shape of a user record
// swagger:model UserResponse
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:    user.UserID,
		Email: user.Email,
		Role:  user.Role,
	}
}
