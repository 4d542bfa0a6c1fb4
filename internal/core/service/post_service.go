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

// IdempotencyStore abstracts the replay store (Redis) used to make post
// creation safe to retry.
type IdempotencyStore interface {
	// Get returns the post ID previously recorded under key, or "" when the
	// key has not been seen.
	Get(ctx context.Context, key string) (string, error)
	// Remember records the post created under key.
	Remember(ctx context.Context, key, postID string) error
}

// PostService implements post use cases.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, idem IdempotencyStore, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, idem: idem, logger: logger}
}

func (s *PostService) List(ctx context.Context, p auth.Principal) ([]*domain.Post, error) {
	if err := authorize(p, auth.ActionRead, auth.ResourcePost, ""); err != nil {
		return nil, err
	}
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, p auth.Principal, id string) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, auth.ActionRead, auth.ResourcePost, post.Author); err != nil {
		return nil, err
	}
	return post, nil
}

// Create stores a new post owned by the calling principal. Any owner field a
// client may have sent never reaches this layer; ownership comes from the
// resolved user record alone. With an idempotency key, a repeated call
// returns the originally created post.
func (s *PostService) Create(ctx context.Context, p auth.Principal, in ports.CreatePostInput) (*domain.Post, error) {
	if err := authorize(p, auth.ActionWrite, auth.ResourcePost, p.Username); err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		id, err := s.idem.Get(ctx, in.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("idempotency check failed, processing anyway")
		} else if id != "" {
			existing, err := s.posts.FindByID(ctx, id)
			if err == nil {
				s.logger.Info().Str("idempotency_key", in.IdempotencyKey).Str("post_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	author, err := s.users.FindByIdentity(ctx, p.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Token outlived its account.
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.posts.Insert(ctx, &domain.Post{
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  author.ID,
		Author:    author.Username,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		if err := s.idem.Remember(ctx, in.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", created.ID).Str("author", created.Author).Msg("post created")
	return created, nil
}

func (s *PostService) Update(ctx context.Context, p auth.Principal, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := resolveOwner(ctx, s.users, existing.AuthorID)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, auth.ActionWrite, auth.ResourcePost, owner); err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Content = in.Content
	existing.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PostService) Delete(ctx context.Context, p auth.Principal, id string) error {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	owner, err := resolveOwner(ctx, s.users, existing.AuthorID)
	if err != nil {
		return err
	}
	if err := authorize(p, auth.ActionDelete, auth.ResourcePost, owner); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Str("deleted_by", p.Username).Msg("post deleted")
	return nil
}
