package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/openblog/blog-api/internal/api/metrics"
	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

// CommentService implements comment use cases.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, logger: logger}
}

func (s *CommentService) List(ctx context.Context, p auth.Principal, postID string) ([]*domain.Comment, error) {
	if err := authorize(p, auth.ActionRead, auth.ResourceComment, ""); err != nil {
		return nil, err
	}
	return s.comments.List(ctx, postID)
}

func (s *CommentService) Get(ctx context.Context, p auth.Principal, id string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, auth.ActionRead, auth.ResourceComment, comment.Author); err != nil {
		return nil, err
	}
	return comment, nil
}

// Create attaches a comment to an existing post, owned by the calling
// principal.
func (s *CommentService) Create(ctx context.Context, p auth.Principal, in ports.CreateCommentInput) (*domain.Comment, error) {
	if err := authorize(p, auth.ActionWrite, auth.ResourceComment, p.Username); err != nil {
		return nil, err
	}

	if _, err := s.posts.FindByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	author, err := s.users.FindByIdentity(ctx, p.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	created, err := s.comments.Insert(ctx, &domain.Comment{
		Content:   in.Content,
		PostID:    in.PostID,
		UserID:    author.ID,
		Author:    author.Username,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.CommentsCreatedTotal.Inc()
	s.logger.Info().Str("comment_id", created.ID).Str("post_id", created.PostID).
		Str("author", created.Author).Msg("comment created")
	return created, nil
}

func (s *CommentService) Update(ctx context.Context, p auth.Principal, id string, in ports.UpdateCommentInput) (*domain.Comment, error) {
	existing, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := resolveOwner(ctx, s.users, existing.UserID)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, auth.ActionWrite, auth.ResourceComment, owner); err != nil {
		return nil, err
	}

	existing.Content = in.Content

	if err := s.comments.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CommentService) Delete(ctx context.Context, p auth.Principal, id string) error {
	existing, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	owner, err := resolveOwner(ctx, s.users, existing.UserID)
	if err != nil {
		return err
	}
	if err := authorize(p, auth.ActionDelete, auth.ResourceComment, owner); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", id).Str("deleted_by", p.Username).Msg("comment deleted")
	return nil
}
