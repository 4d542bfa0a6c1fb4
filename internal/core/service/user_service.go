package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

// UserService implements account administration.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, p auth.Principal) ([]*domain.User, error) {
	if err := authorize(p, auth.ActionRead, auth.ResourceUser, ""); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, p auth.Principal, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, auth.ActionRead, auth.ResourceUser, user.Username); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, p auth.Principal, in ports.CreateUserInput) (*domain.User, error) {
	if err := authorize(p, auth.ActionWrite, auth.ResourceUser, ""); err != nil {
		return nil, err
	}
	if in.Username == "" || in.Email == "" || in.Password == "" || !in.Role.IsValid() {
		return nil, domain.ErrInvalidCredentials
	}

	taken, err := s.users.ExistsByIdentity(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateIdentity
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Insert(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).
		Str("created_by", p.Username).Msg("user provisioned")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, p auth.Principal, id string, in ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, auth.ActionWrite, auth.ResourceUser, existing.Username); err != nil {
		return nil, err
	}

	if in.Username != "" {
		existing.Username = in.Username
	}
	if in.Email != "" {
		existing.Email = in.Email
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *UserService) Delete(ctx context.Context, p auth.Principal, id string) error {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(p, auth.ActionDelete, auth.ResourceUser, existing.Username); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("username", existing.Username).Str("deleted_by", p.Username).Msg("user deleted")
	return nil
}
