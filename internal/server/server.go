package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bookscan/internal/config"
	"bookscan/internal/handler"
	"bookscan/internal/middleware"
	"bookscan/internal/observability"
	"bookscan/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the gin engine with every BookScan route and middleware
func NewRouter(cfg *config.Config, reviewer handler.ReviewService) (*gin.Engine, error) {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("request_id", c.GetString(middleware.RequestIDKey)).Errorf("[PANIC] %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprint(recovered)})
	}))

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	ipLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	var dailyQuota *middleware.DailyQuota
	if cfg.RateLimit.DailyQuota > 0 {
		dailyQuota = middleware.NewDailyQuota(cfg.RateLimit.DailyQuota)
	}
	log.Infof("[INFO] Rate limiting enabled rps=%v burst=%d daily_quota=%d",
		cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.DailyQuota)

	observability.InitMetrics()

	h := handler.New(reviewer)

	// Probes and metrics (no rate limiting)
	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", h.HandleIndex)
	r.GET("/review/*book_name", h.HandleReviewPage)
	r.POST("/generate_review", middleware.RateLimitMiddleware(ipLimiter, dailyQuota), h.HandleGenerateReview)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r, nil
}

// Server runs the router on an http.Server with explicit timeouts
type Server struct {
	cfg  *config.Config
	http *http.Server
}

func New(cfg *config.Config, reviewer handler.ReviewService) (*Server, error) {
	router, err := NewRouter(cfg, reviewer)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      cfg.LLM.Timeout + 15*time.Second,
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":            s.http.Addr,
			"env":             s.cfg.Env,
			"allowed_origins": s.cfg.AllowedOrigins,
		}).Info("[INFO] Server ready")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[INFO] Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
