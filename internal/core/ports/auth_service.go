package ports

import (
	"context"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	AdminKey string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}

// TokenIssuer signs session tokens for an account.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier checks a session token and returns its claims. Any failure
// (bad signature, malformed, expired) is reported as domain.ErrUnauthenticated.
type TokenVerifier interface {
	Verify(token string) (*domain.SessionClaims, error)
}
