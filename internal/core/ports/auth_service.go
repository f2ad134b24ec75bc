package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	FullName string
	Email    string
	Password string
}

// AuthResult is returned on successful signup or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines the signup/login use cases.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// Identity is the verified content of a bearer token.
type Identity struct {
	UserID string
	Role   domain.Role
}

// TokenService mints and verifies stateless bearer tokens. A token stays
// valid until its natural expiry; there is no server-side revocation.
type TokenService interface {
	Issue(userID string, role domain.Role) (string, error)
	Verify(token string) (*Identity, error)
}
