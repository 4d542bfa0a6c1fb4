package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
)

// CreateUserInput carries the fields for an admin-created account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput carries the mutable account fields.
type UpdateUserInput struct {
	Username string
	Email    string
}

// UserService defines use-case operations on user accounts. Every method
// takes the calling principal explicitly; there is no ambient identity.
type UserService interface {
	// List returns all users. Admin only.
	List(ctx context.Context, p auth.Principal) ([]*domain.User, error)
	// Get returns one user. Self or Admin.
	Get(ctx context.Context, p auth.Principal, id string) (*domain.User, error)
	// Create provisions an account with an explicit role. Admin only.
	Create(ctx context.Context, p auth.Principal, in CreateUserInput) (*domain.User, error)
	// Update mutates username/email. Self or Admin.
	Update(ctx context.Context, p auth.Principal, id string, in UpdateUserInput) (*domain.User, error)
	// Delete removes the account. Self or Admin.
	Delete(ctx context.Context, p auth.Principal, id string) error
}
