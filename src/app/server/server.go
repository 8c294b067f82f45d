// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"remixjokes/src/app/http/cookie"
	"remixjokes/src/app/http/handler"
	"remixjokes/src/app/http/response"
	"remixjokes/src/app/middleware"
	"remixjokes/src/core/ports"
	"remixjokes/src/core/usecase"
	"remixjokes/src/infra/config"
	"remixjokes/src/infra/metrics"
)

// Deps are the adapters the server runs on.
type Deps struct {
	DB       ports.Repository
	Users    ports.UserRepository
	Jokes    ports.JokeRepository
	Hasher   ports.PasswordHasher
	Sessions ports.SessionCodec

	// Revoker is optional; leave it nil to run without server-side logout.
	Revoker ports.SessionRevoker
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	sessionService *usecase.SessionService
	jar            *cookie.Jar

	// Handlers
	healthHandler *handler.HealthHandler
	authHandler   *handler.AuthHandler
	jokeHandler   *handler.JokeHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	components := map[string]ports.ExternalService{}
	if deps.Revoker != nil {
		components["redis"] = deps.Revoker
	}

	// Create services
	healthService := usecase.NewHealthService(log, deps.DB, components)
	authService := usecase.NewAuthService(deps.Users, deps.Hasher, log)
	sessionService := usecase.NewSessionService(deps.Sessions, deps.Users, deps.Revoker, log)
	jokeService := usecase.NewJokeService(deps.Jokes, log)

	jar := cookie.NewJar(cfg.Session)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		sessionService: sessionService,
		jar:            jar,
		healthHandler:  handler.NewHealthHandler(healthService),
		authHandler:    handler.NewAuthHandler(authService, sessionService, jar, log),
		jokeHandler:    handler.NewJokeHandler(jokeService, sessionService, log),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Metrics())
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.CSRF(middleware.CSRFConfig{
		AllowedOrigins: s.cfg.Security.AllowedOrigins,
	}))
	s.router.Use(middleware.Session(s.sessionService, s.jar))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	s.router.GET("/", func(c *gin.Context) {
		response.Redirect(c, "/jokes")
	})

	// Auth
	s.router.GET("/login", s.authHandler.LoginPage)
	s.router.POST("/login", s.authHandler.Login)
	s.router.GET("/logout", s.authHandler.LogoutRedirect)
	s.router.POST("/logout", s.authHandler.Logout)

	// Jokes
	jokes := s.router.Group("/jokes")
	{
		jokes.GET("", s.jokeHandler.List)
		jokes.GET("/random", s.jokeHandler.Random)
		jokes.GET("/new", middleware.RequireUser(), s.jokeHandler.NewPage)
		jokes.POST("/new", middleware.RequireUser(), s.jokeHandler.Create)
		jokes.GET("/:jokeId", s.jokeHandler.Show)
		jokes.POST("/:jokeId", s.jokeHandler.Action)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
