package ports

import (
	"context"

	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
)

// CreateCommentInput carries the fields for a new comment. The owner is
// always the calling principal.
type CreateCommentInput struct {
	PostID  string
	Content string
}

// UpdateCommentInput carries the mutable comment fields.
type UpdateCommentInput struct {
	Content string
}

// CommentService defines use-case operations on comments.
type CommentService interface {
	// List returns comments, optionally scoped to one post.
	List(ctx context.Context, p auth.Principal, postID string) ([]*domain.Comment, error)
	Get(ctx context.Context, p auth.Principal, id string) (*domain.Comment, error)
	Create(ctx context.Context, p auth.Principal, in CreateCommentInput) (*domain.Comment, error)
	Update(ctx context.Context, p auth.Principal, id string, in UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
}
