package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/config"
	"github.com/Rajankit27/FakeNewsDetection/internal/handler"
	"github.com/Rajankit27/FakeNewsDetection/internal/middleware"
	"github.com/Rajankit27/FakeNewsDetection/internal/render"
	"github.com/Rajankit27/FakeNewsDetection/internal/service"
	"github.com/Rajankit27/FakeNewsDetection/internal/session"
	"github.com/Rajankit27/FakeNewsDetection/internal/view"
)

const shutdownTimeout = 5 * time.Second

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Store    session.Store
	Cookies  *session.Cookies
	Backend  service.Backend
	Notifier service.Notifier
	Renderer *render.Renderer
}

type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	deps    Deps
	variant view.Variant
	logger  *zap.Logger
}

func NewServer(cfg *config.Config, deps Deps, logger *zap.Logger) (*Server, error) {
	variant, err := view.VariantByName(cfg.UI.Variant)
	if err != nil {
		return nil, err
	}
	if deps.Notifier == nil {
		deps.Notifier = service.NopNotifier{}
	}

	router := gin.Default()
	router.SetHTMLTemplate(deps.Renderer.Templates())

	s := &Server{
		router:  router,
		cfg:     cfg,
		deps:    deps,
		variant: variant,
		logger:  logger,
	}
	s.setupRoutes()
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	inflight := service.NewInflight()
	analysisService := service.NewAnalysisService(s.deps.Backend, s.cfg.MinLatency(), s.logger)
	feedbackService := service.NewFeedbackService(s.deps.Backend, s.deps.Notifier, s.logger)
	adminService := service.NewAdminService(s.deps.Backend, s.deps.Notifier, s.logger)
	authService := service.NewAuthService(s.deps.Backend, s.deps.Store, s.logger)

	authHandler := handler.NewAuthHandler(authService, inflight, s.variant, s.logger)
	dashboardHandler := handler.NewDashboardHandler(analysisService, adminService, inflight, s.variant, s.logger)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, inflight, s.variant, s.logger)
	adminHandler := handler.NewAdminHandler(adminService, inflight, s.variant, s.logger)
	settingsHandler := handler.NewSettingsHandler(s.deps.Store, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	s.router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("Referrer-Policy", "same-origin")
		c.Next()
	})

	web := s.router.Group("/")
	web.Use(middleware.SessionMiddleware(s.deps.Store, s.deps.Cookies, s.logger))
	{
		web.GET("/login", authHandler.ShowLogin)
		web.POST("/login", authHandler.Login)
		web.POST("/register", authHandler.Register)
		web.POST("/logout", authHandler.Logout)
		web.POST("/settings", settingsHandler.UpdateSettings)
		web.GET("/analytics", dashboardHandler.Analytics)
	}

	authRequired := web.Group("/")
	authRequired.Use(middleware.RequireAuth())
	{
		authRequired.GET("/", dashboardHandler.Dashboard)
		authRequired.POST("/analyze", dashboardHandler.Analyze)
		authRequired.GET("/ticker", dashboardHandler.Ticker)
		authRequired.GET("/history", dashboardHandler.History)
		authRequired.POST("/feedback", feedbackHandler.Submit)
	}

	adminRequired := web.Group("/admin")
	adminRequired.Use(middleware.RequireAdmin())
	{
		adminRequired.GET("", adminHandler.Overview)
		adminRequired.GET("/users", adminHandler.Users)
		adminRequired.POST("/retrain", adminHandler.Retrain)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.Server.Port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("address", srv.Addr), zap.String("variant", s.variant.Name))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("Server exited")
	return nil
}
