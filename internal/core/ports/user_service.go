package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// ListUsersResult is one page of the admin user listing.
type ListUsersResult struct {
	Users []*domain.User
	Total int64
	Page  int
	Pages int
}

// UpdateProfileInput carries optional self-service profile changes.
// Empty fields are left unchanged.
type UpdateProfileInput struct {
	FullName string
	Email    string
}

// UserService defines self-service and admin moderation use cases.
// Operations acting on behalf of the caller take the acting user id
// explicitly; identity is never ambient state.
type UserService interface {
	List(ctx context.Context, page int) (*ListUsersResult, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, actorID string, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, actorID, oldPassword, newPassword string) error
}
