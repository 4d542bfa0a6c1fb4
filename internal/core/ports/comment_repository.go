package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// List returns comments, oldest first. A non-empty postID scopes the
	// result to one post.
	List(ctx context.Context, postID string) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}
