// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"devconnector/internal/cache"
	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/github"
	"devconnector/internal/middleware"
	"devconnector/internal/observability"
	"devconnector/internal/repository"
	"devconnector/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	profileRepo    repository.ProfileRepository
	postService    *service.PostService
	profileService *service.ProfileService
	github         *github.Client
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: observability.InitFiberMetrics("devconnector-api"),
		userRepo:       userRepo,
		postRepo:       postRepo,
		profileRepo:    profileRepo,
		github:         github.NewClient(cfg.GithubAPIBase),
	}
	server.postService = service.NewPostService(postRepo, userRepo)
	server.profileService = service.NewProfileService(profileRepo, userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, x-auth-token",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Registration and login
	api.Post("/users", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	api.Post("/auth", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	api.Get("/auth", middleware.AuthRequired, s.GetAuthenticatedUser)

	// Posts, all behind auth
	posts := api.Group("/posts", middleware.AuthRequired)
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.GetPosts)
	// Specific /:id/:resource routes before the generic /:id routes
	posts.Put("/:id/like", s.LikePost)
	posts.Put("/:id/unlike", s.UnlikePost)
	posts.Post("/:id/comment", s.AddComment)
	posts.Delete("/:id/comment/:commentId", s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)

	// Profiles: browsing is public, everything else requires auth
	profile := api.Group("/profile")
	profile.Get("/me", middleware.AuthRequired, s.GetMyProfile)
	profile.Post("/", middleware.AuthRequired, s.UpsertProfile)
	profile.Delete("/", middleware.AuthRequired, s.DeleteAccount)
	profile.Put("/experience", middleware.AuthRequired, s.AddExperience)
	profile.Delete("/experience/:id", middleware.AuthRequired, s.RemoveExperience)
	profile.Put("/education", middleware.AuthRequired, s.AddEducation)
	profile.Delete("/education/:id", middleware.AuthRequired, s.RemoveEducation)
	profile.Get("/github/:username", s.GetGithubRepos)
	profile.Get("/user/:userId", s.GetProfileByUser)
	profile.Get("/", s.GetProfiles)
}

// App builds the Fiber application with middleware and routes, reusing it on
// subsequent calls.
func (s *Server) App() *fiber.App {
	if s.app == nil {
		s.app = fiber.New(fiber.Config{
			AppName: "devconnector",
		})
		s.SetupMiddleware(s.app)
		s.SetupRoutes(s.app)
	}
	return s.app
}

// Start listens on the configured port and blocks until the server stops.
func (s *Server) Start() error {
	return s.App().Listen(":" + s.config.Port)
}

// Shutdown gracefully stops the HTTP server and closes the database and
// Redis connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			return err
		}
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports database and Redis health. Redis is optional, so a
// missing client degrades the report without failing readiness.
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

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
