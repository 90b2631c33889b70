package auth

import "github.com/aydinsoft/backoffice-backend/internal/users"

// LoginRequest is the credential payload posted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated account and its access token.
type LoginResponse struct {
	User  *users.UserDTO `json:"user"`
	Token string         `json:"token"`
}
