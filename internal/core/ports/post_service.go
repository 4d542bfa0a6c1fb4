package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
)

// CreatePostInput carries the fields for a new post. Ownership is never part
// of the input: it is bound to the calling principal.
type CreatePostInput struct {
	Title   string
	Content string
	// IdempotencyKey, when non-empty, makes creation replay-safe: a repeated
	// key returns the originally created post.
	IdempotencyKey string
}

// UpdatePostInput carries the mutable post fields.
type UpdatePostInput struct {
	Title   string
	Content string
}

// PostService defines use-case operations on posts.
type PostService interface {
	List(ctx context.Context, p auth.Principal) ([]*domain.Post, error)
	Get(ctx context.Context, p auth.Principal, id string) (*domain.Post, error)
	Create(ctx context.Context, p auth.Principal, in CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, p auth.Principal, id string, in UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
}
