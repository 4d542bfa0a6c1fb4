package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	// Delete removes the post and its comments.
	Delete(ctx context.Context, id string) error
}
