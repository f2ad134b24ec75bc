package handler

import "github.com/usermgmt/user-management-api/internal/core/domain"

type signupRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authUserPayload is the reduced user view returned with a fresh token.
type authUserPayload struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type authResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	User    authUserPayload `json:"user"`
}

type meResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// messageResponse is the generic acknowledgment envelope.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
