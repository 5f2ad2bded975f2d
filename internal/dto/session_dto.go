package dto

import "github.com/golibhub/golib-api/internal/models"

// LoginRequest selects the session role. Role selection is the whole of
// authentication in this system.
type LoginRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN STAFF"`
}

// LoginResponse carries the bearer token and the synthetic identity.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
