package handler

import "github.com/usermgmt/user-management-api/internal/core/domain"

type updateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=3"`
	Email    string `json:"email"     validate:"omitempty,email"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type listUsersResponse struct {
	Success bool           `json:"success"`
	Users   []*domain.User `json:"users"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Pages   int            `json:"pages"`
}

// profilePayload is the reduced view returned after a profile update.
type profilePayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type profileResponse struct {
	Success bool           `json:"success"`
	User    profilePayload `json:"user"`
}
