package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts. The core
// never issues raw queries; it depends only on these lookups.
type UserRepository interface {
	// Insert persists a new user and returns it with its assigned ID.
	// A username or email collision yields domain.ErrDuplicateIdentity.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByIdentity resolves a user by username or email.
	FindByIdentity(ctx context.Context, identity string) (*domain.User, error)

	// ExistsByIdentity reports whether the username or the email is taken.
	ExistsByIdentity(ctx context.Context, username, email string) (bool, error)

	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
