// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	_ "bjjsocial/docs" // swagger docs
	"bjjsocial/internal/config"
	"bjjsocial/internal/database"
	"bjjsocial/internal/middleware"
	"bjjsocial/internal/models"
	"bjjsocial/internal/observability"
	"bjjsocial/internal/redisclient"
	"bjjsocial/internal/repository"
	"bjjsocial/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
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
	rateLimiter    *middleware.RateLimiter

	userRepo        repository.UserRepository
	followRepo      repository.FollowRepository
	postRepo        repository.PostRepository
	commentRepo     repository.CommentRepository
	tournamentRepo  repository.TournamentRepository
	matchRepo       repository.MatchRepository
	leaderboardRepo repository.LeaderboardRepository

	userService        *service.UserService
	followService      *service.FollowService
	postService        *service.PostService
	tournamentService  *service.TournamentService
	leaderboardService *service.LeaderboardService
	searchService      *service.SearchService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// nil when Redis is unreachable; revocation and per-route limits degrade
	rdb := redisclient.Connect(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, rdb)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use it with an in-memory database and miniredis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	s := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  middleware.InitMetrics(observability.ServiceName),
		rateLimiter:     middleware.NewRateLimiter(redisClient, cfg.Env),
		userRepo:        repository.NewUserRepository(db),
		followRepo:      repository.NewFollowRepository(db),
		postRepo:        repository.NewPostRepository(db),
		commentRepo:     repository.NewCommentRepository(db),
		tournamentRepo:  repository.NewTournamentRepository(db),
		matchRepo:       repository.NewMatchRepository(db),
		leaderboardRepo: repository.NewLeaderboardRepository(db),
	}

	s.userService = service.NewUserService(s.userRepo)
	s.followService = service.NewFollowService(s.followRepo, s.userRepo)
	s.postService = service.NewPostService(s.postRepo, s.commentRepo)
	s.tournamentService = service.NewTournamentService(s.tournamentRepo, s.matchRepo, s.userRepo)
	s.leaderboardService = service.NewLeaderboardService(s.leaderboardRepo, s.userRepo)
	s.searchService = service.NewSearchService(s.userRepo, s.postRepo, s.tournamentRepo)

	return s, nil
}

// App builds the Fiber application with middleware and routes installed.
func (s *Server) App() *fiber.App {
	if s.app != nil {
		return s.app
	}

	app := fiber.New(fiber.Config{
		AppName: "BJJ Social API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return models.RespondWithError(c, fe.Code, fe)
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err.Error())
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	// tracing before ContextMiddleware so the trace id reaches the logger
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	if !s.rateLimitingDisabled() {
		app.Use(limiter.New(limiter.Config{
			Max:        100,
			Expiration: 1 * time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Method() == fiber.MethodOptions
			},
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests, please try again later.",
				})
			},
		}))
	}
}

func (s *Server) rateLimitingDisabled() bool {
	switch s.config.Env {
	case "", "test", "development", "stress":
		return true
	}
	return false
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "BJJ Social Metrics Dashboard",
	}))
	api.Get("/swagger/*", swagger.HandlerDefault)

	auth := s.AuthRequired()

	// Auth
	api.Post("/register", s.rateLimiter.LimitWithPolicy(5, 10*time.Minute, middleware.FailClosed, "register"), s.Register)
	api.Post("/login", s.rateLimiter.LimitWithPolicy(10, 5*time.Minute, middleware.FailClosed, "login"), s.Login)
	api.Post("/logout", auth, s.Logout)
	api.Get("/auth/user", auth, s.GetCurrentUser)

	// Users; specific /:id/:resource routes before the generic /:id
	api.Put("/user/profile", auth, s.UpdateProfile)
	users := api.Group("/users")
	users.Get("/:id/followers", s.GetFollowers)
	users.Get("/:id/following", s.GetFollowing)
	users.Post("/:id/follow", auth, s.rateLimiter.Limit(30, time.Minute, "follow"), s.FollowUser)
	users.Delete("/:id/follow", auth, s.UnfollowUser)
	users.Get("/:id/stats", s.GetUserStats)
	users.Get("/:id/matches", s.GetUserMatches)
	users.Get("/:id/leaderboard", s.GetUserLeaderboard)
	users.Get("/:id", s.GetUserProfile)

	// Posts
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", auth, s.rateLimiter.Limit(10, time.Minute, "create_post"), s.CreatePost)
	posts.Post("/:id/like", auth, s.LikePost)
	posts.Delete("/:id/like", auth, s.UnlikePost)
	posts.Get("/:id/comments", s.GetComments)
	posts.Post("/:id/comments", auth, s.rateLimiter.Limit(20, time.Minute, "create_comment"), s.CreateComment)
	posts.Delete("/:id", auth, s.DeletePost)

	// Tournaments and matches
	tournaments := api.Group("/tournaments")
	tournaments.Get("/", s.GetTournaments)
	tournaments.Post("/", auth, s.CreateTournament)
	tournaments.Get("/:id/matches", s.GetTournamentMatches)
	tournaments.Post("/:id/matches", auth, s.CreateMatch)
	tournaments.Get("/:id", s.GetTournament)
	api.Post("/matches/:matchId/result", auth, s.SubmitMatchResult)

	// Leaderboards
	api.Get("/leaderboard", s.GetLeaderboard)
	api.Get("/schools/rankings", s.GetSchoolRankings)
	api.Get("/schools/:school/leaderboard", s.GetSchoolLeaderboard)

	api.Get("/search", s.rateLimiter.Limit(30, time.Minute, "search"), s.Search)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports database and Redis health. Redis is optional, so
// only the database decides readiness.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus != "healthy" {
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

// Start starts the server
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("server starting", "port", s.config.Port, "env", s.config.Env)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
