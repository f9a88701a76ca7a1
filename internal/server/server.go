// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"context"
	"strings"
	"time"

	"watchreview/internal/auth"
	"watchreview/internal/config"
	"watchreview/internal/middleware"
	"watchreview/internal/models"
	"watchreview/internal/repository"
	"watchreview/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *auth.TokenIssuer
	userRepo       repository.UserRepository
	watchRepo      repository.WatchRepository
	reviewRepo     repository.ReviewRepository
	commentRepo    repository.CommentRepository
	userService    *service.UserService
	reviewService  *service.ReviewService
	commentService *service.CommentService
}

// New creates a server instance around an already-established database
// handle. The handle's lifecycle belongs to the caller.
func New(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	watchRepo := repository.NewWatchRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	return &Server{
		config:         cfg,
		db:             db,
		promMiddleware: fiberprometheus.New("watchreview-api"),
		tokens:         tokens,
		userRepo:       userRepo,
		watchRepo:      watchRepo,
		reviewRepo:     reviewRepo,
		commentRepo:    commentRepo,
		userService:    service.NewUserService(userRepo, tokens),
		reviewService:  service.NewReviewService(reviewRepo),
		commentService: service.NewCommentService(commentRepo, reviewRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	app.Use(helmet.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Legacy search route kept off the /api prefix for frontend compatibility.
	app.Get("/search-watches", s.SearchWatches)

	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", s.Register)
	authGroup.Post("/login", s.Login)
	authGroup.Get("/me", s.AuthRequired(), s.Me)

	// Public catalog + review reads
	watches := api.Group("/watches")
	watches.Get("/", s.GetWatches)
	watches.Get("/:watchId/reviews/:reviewId", s.GetReview)
	watches.Get("/:watchId/reviews", s.GetWatchReviews)
	watches.Get("/:watchId/average", s.GetWatchAverageScore)
	watches.Get("/:watchId", s.GetWatch)

	// Protected mutating routes
	watches.Post("/:watchId/reviews", s.AuthRequired(), s.CreateReview)
	watches.Post("/:watchId/reviews/:reviewId/comments", s.AuthRequired(), s.CreateComment)

	api.Get("/reviews/me", s.AuthRequired(), s.GetMyReviews)
	api.Get("/comments/me", s.AuthRequired(), s.GetMyComments)

	users := api.Group("/users", s.AuthRequired())
	users.Put("/:userId/reviews/:reviewId", s.UpdateReview)
	users.Delete("/:userId/reviews/:reviewId", s.DeleteReview)
	users.Put("/:userId/comments/:commentId", s.UpdateComment)
	users.Delete("/:userId/comments/:commentId", s.DeleteComment)
}

// AuthRequired returns the bearer-token authentication middleware. A missing
// token is unauthenticated (401); a present but invalid or expired token is
// forbidden (403).
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Access denied. No token provided."))
		}

		claims, err := s.tokens.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Forbidden"))
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, claims.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown closes the server-owned resources, currently the database handle.
func (s *Server) Shutdown(_ context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			return cerr
		}
		middleware.Logger.Info("Database connection closed")
	}
	return nil
}
