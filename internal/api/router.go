package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/openblog/blog-api/docs"
	"github.com/openblog/blog-api/internal/api/handler"
	"github.com/openblog/blog-api/internal/api/middleware"
	"github.com/openblog/blog-api/internal/core/auth"
	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/service"
	mongodb "github.com/openblog/blog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/openblog/blog-api/internal/infrastructure/db/redis"
	"github.com/openblog/blog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all routes registered.
//
// Route authentication comes in three grades: public reads carry optional
// auth so an authenticated caller keeps its identity, mutations require a
// verified token, and the user admin surface additionally fast-fails on
// role before reaching the service layer.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *auth.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	idemStore := redisstore.NewIdempotencyStore(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	postService := service.NewPostService(postRepo, userRepo, idemStore, log)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	requireAuth := middleware.Auth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Versioned API ---
	v1 := e.Group("/v1")

	users := v1.Group("/users", requireAuth)
	users.GET("", userHandler.List, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	posts := v1.Group("/posts")
	posts.GET("", postHandler.List, optionalAuth)
	posts.GET("/:id", postHandler.Get, optionalAuth)
	posts.POST("", postHandler.Create, requireAuth)
	posts.PUT("/:id", postHandler.Update, requireAuth)
	posts.DELETE("/:id", postHandler.Delete, requireAuth)

	comments := v1.Group("/comments")
	comments.GET("", commentHandler.List, optionalAuth)
	comments.GET("/:id", commentHandler.Get, optionalAuth)
	comments.POST("", commentHandler.Create, requireAuth)
	comments.PUT("/:id", commentHandler.Update, requireAuth)
	comments.DELETE("/:id", commentHandler.Delete, requireAuth)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
