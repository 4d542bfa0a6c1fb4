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

// loginDummyHash is a valid bcrypt digest compared against on the
// unknown-identity path, so a login attempt costs the same hashing work
// whether or not the account exists. Response timing must not reveal more
// than the response body does.
const loginDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *auth.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates an account with the User role. The password is hashed
// before any write, so a user can never exist without a valid hash.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	taken, err := s.users.ExistsByIdentity(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateIdentity
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token. An unknown identity
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identity, password string) (string, error) {
	if identity == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			auth.CheckPassword(password, loginDummyHash)
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Principal{Username: user.Username, Role: user.Role})
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return token, nil
}
