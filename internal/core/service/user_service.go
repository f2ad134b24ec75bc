package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// pageSize is fixed for the admin listing.
const pageSize = 10

// UserService implements the admin listing, moderation, and self-service
// profile use cases.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns one page of users in creation order. Pages are 1-indexed;
// an out-of-range page yields an empty list, not an error.
func (s *UserService) List(ctx context.Context, page int) (*ports.ListUsersResult, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx, int64(page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	for i, u := range users {
		users[i] = u.WithoutHash()
	}

	pages := int((total + pageSize - 1) / pageSize)
	return &ports.ListUsersResult{Users: users, Total: total, Page: page, Pages: pages}, nil
}

// Activate sets the account status to active. Idempotent.
func (s *UserService) Activate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusActive)
}

// Deactivate sets the account status to inactive. Idempotent. Already
// issued tokens stay valid until expiry; deactivation does not revoke them.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.StatusInactive)
}

func (s *UserService) setStatus(ctx context.Context, id string, status domain.Status) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Status == status {
		return nil
	}

	user.Status = status
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("status", string(status)).Msg("user status changed")
	return nil
}

// UpdateProfile applies the caller's own profile changes. A changed email
// must not collide with another account.
func (s *UserService) UpdateProfile(ctx context.Context, actorID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.FullName); name != "" {
		user.FullName = name
	}

	if input.Email != "" {
		email := domain.NormalizeEmail(input.Email)
		if email != user.Email {
			if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != user.ID {
				return nil, domain.ErrEmailInUse
			}
			user.Email = email
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.WithoutHash(), nil
}

// ChangePassword replaces the caller's password after verifying the old
// one. The stored hash is untouched unless verification succeeds.
func (s *UserService) ChangePassword(ctx context.Context, actorID, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, actorID)
	if err != nil {
		return err
	}

	if !verifyPassword(user.PasswordHash, oldPassword) {
		return domain.ErrInvalidOldPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", actorID).Msg("password changed")
	return nil
}
