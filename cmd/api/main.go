package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/openblog/blog-api/internal/api"
	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/infrastructure/db/mongo"
	"github.com/openblog/blog-api/internal/infrastructure/db/redis"
	"github.com/openblog/blog-api/internal/pkg/config"
	"github.com/openblog/blog-api/pkg/logger"
)

// @title        Blog API
// @version      1.0
// @description  Minimal blogging backend with JWT authentication and ownership-or-role authorization.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auth configuration")
	}

	ctx := context.Background()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongo.NewUserRepository(db)
	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := seedAdmin(ctx, userRepo, cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	e := api.NewRouter(db, rdb, tokens, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates every collection index before the first request is
// served; the unique user indexes in particular must exist before any
// registration is accepted.
func ensureIndexes(ctx context.Context, db *driver.Database) error {
	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongo.NewPostRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongo.NewCommentRepository(db).EnsureIndexes(ctx)
}

// seedAdmin provisions the initial administrator when the seed variables are
// set and the username is still free. Existing accounts are left untouched
// so restarts never overwrite a rotated password.
func seedAdmin(ctx context.Context, repo *mongo.UserRepository, cfg config.AdminConfig, log zerolog.Logger) error {
	if cfg.Username == "" || cfg.Email == "" || cfg.Password == "" {
		log.Debug().Msg("admin seed not configured, skipping")
		return nil
	}

	taken, err := repo.ExistsByIdentity(ctx, cfg.Username, cfg.Email)
	if err != nil {
		return err
	}
	if taken {
		log.Debug().Str("username", cfg.Username).Msg("admin account already present")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Insert(ctx, &domain.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			return nil
		}
		return err
	}

	log.Info().Str("username", cfg.Username).Msg("admin account seeded")
	return nil
}
