// Package api exposes the HTTP surface: authentication, prediction
// scans, the review workflow, static registries, surveillance
// briefings, preferences and the live event feed.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mohammedahmeduddin04/DocAI/internal/auth"
	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/middleware"
	"github.com/mohammedahmeduddin04/DocAI/internal/prefs"
	"github.com/mohammedahmeduddin04/DocAI/internal/service"
	"github.com/mohammedahmeduddin04/DocAI/internal/store"
	"github.com/mohammedahmeduddin04/DocAI/internal/surveillance"
	"github.com/mohammedahmeduddin04/DocAI/pkg/rationale"
)

// Server represents the HTTP server.
type Server struct {
	cfg          *domain.Config
	router       *gin.Engine
	server       *http.Server
	logger       *logrus.Logger
	auth         *auth.Service
	predictor    *service.Predictor
	reviews      *store.ReviewStore
	surveillance *surveillance.Service
	prefs        *prefs.Service
	rationale    rationale.Generator
}

// Deps bundles the services the server routes to.
type Deps struct {
	Auth         *auth.Service
	Predictor    *service.Predictor
	Reviews      *store.ReviewStore
	Surveillance *surveillance.Service
	Prefs        *prefs.Service
	Rationale    rationale.Generator
}

// NewServer creates a new HTTP server instance.
func NewServer(cfg *domain.Config, deps Deps, logger *logrus.Logger) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.AuditLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())

	s := &Server{
		cfg:          cfg,
		router:       router,
		logger:       logger,
		auth:         deps.Auth,
		predictor:    deps.Predictor,
		reviews:      deps.Reviews,
		surveillance: deps.Surveillance,
		prefs:        deps.Prefs,
		rationale:    deps.Rationale,
	}

	s.setupRoutes()
	return s
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", s.handleLogin)
			authGroup.POST("/logout", s.session(), s.handleLogout)
			authGroup.GET("/me", s.session(), s.handleCurrentUser)
			authGroup.PUT("/me", s.session(), s.handleUpdateProfile)
		}

		predictions := v1.Group("/predictions", s.session())
		{
			predictions.POST("", middleware.RequireRole(domain.RolePatient), s.handleScan)
			predictions.GET("", s.handleListPredictions)
			predictions.POST("/:id/decision", middleware.RequireRole(domain.RoleDoctor), s.handleDecision)
			predictions.POST("/:id/rationale", middleware.RequireRole(domain.RoleDoctor), s.handleRationale)
		}

		catalogGroup := v1.Group("/catalog")
		{
			catalogGroup.GET("/diseases", s.handleDiseases)
			catalogGroup.GET("/symptoms", s.handleSymptoms)
			catalogGroup.GET("/doctors", s.handleDoctors)
			catalogGroup.GET("/tests", s.handleTests)
			catalogGroup.GET("/vaccines", s.handleVaccines)
		}

		surveillanceGroup := v1.Group("/surveillance", s.session(), middleware.RequireRole(domain.RoleAdmin))
		{
			surveillanceGroup.GET("/cities", s.handleCities)
			surveillanceGroup.POST("/cities/:name/report", s.handleDeploymentReport)
		}

		v1.GET("/pledge", s.session(), s.handleGetPledge)
		v1.PUT("/pledge", s.session(), middleware.RequireRole(domain.RolePatient), s.handleSetPledge)
		v1.GET("/theme", s.handleGetTheme)
		v1.PUT("/theme", s.handleSetTheme)

		v1.GET("/feed", s.session(), s.handleFeed)
	}
}

// session resolves the active user and stores it in the request
// context for role checks and decision attribution.
func (s *Server) session() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.auth.CurrentUser(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				domain.NewAPIError(domain.ErrAuthentication, "authentication required", "", c.GetString("correlation_id")))
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}
