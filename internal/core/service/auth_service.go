package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// minFullNameLen mirrors the request schema so the service stays safe
// when called without the HTTP layer in front of it.
const minFullNameLen = 3

// AuthService implements signup and login on top of the user repository
// and the token service.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Signup creates a new account with role "user" and status "active".
// The duplicate pre-check here is best effort; a racing insert is caught
// by the repository's uniqueness constraint and surfaces the same error.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	// Length is checked after trimming so a padded name cannot sneak an
	// empty display name into storage.
	if email == "" || input.Password == "" || len(fullName) < minFullNameLen {
		return nil, domain.ErrValidation
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created.WithoutHash()}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same error so callers cannot enumerate accounts.
// Inactive accounts may still log in; status only gates dashboard display.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !verifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	user.LastLogin = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: user.WithoutHash()}, nil
}
