package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// Create must fail with domain.ErrDuplicateEmail when the normalized email
// already exists; the storage layer's uniqueness constraint is the
// authoritative guard, the service-level pre-check only improves error
// latency. List returns users in creation order so pagination is stable.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int64) ([]*domain.User, error)
}
