package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	// Register creates an account with the User role. A taken username or
	// email yields domain.ErrDuplicateIdentity.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)

	// Login verifies credentials and returns a signed bearer token. The
	// identity may be a username or an email; both failure modes collapse
	// into domain.ErrInvalidCredentials.
	Login(ctx context.Context, identity, password string) (string, error)
}
