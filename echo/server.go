// Package echo exposes a jobscrape.Scraper over HTTP using labstack/echo.
package echo

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/LuseBiswas/jobscrape"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// DefaultRequestTimeout bounds the time spent on one inbound request,
// including the outbound fetch.
const DefaultRequestTimeout = 30 * time.Second

// DefaultAllowOrigin is the front end allowed to call the API cross-origin.
const DefaultAllowOrigin = "https://assingment-dexyai.onrender.com"

// Server serves the scrape API.
type Server struct {
	echo    *echo.Echo
	scraper jobscrape.Scraper
	logger  *slog.Logger

	allowOrigins   []string
	requestTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithAllowOrigins sets the origins allowed by the CORS policy.
// Defaults to DefaultAllowOrigin.
func WithAllowOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowOrigins = origins
	}
}

// WithRequestTimeout sets the deadline applied to every request context.
// Defaults to DefaultRequestTimeout; zero disables the deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// NewServer returns a Server that answers scrape requests with scraper.
func NewServer(scraper jobscrape.Scraper, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		echo:           echo.New(),
		scraper:        scraper,
		logger:         logger,
		allowOrigins:   []string{DefaultAllowOrigin},
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Server.ReadHeaderTimeout = 10 * time.Second

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.Any("err", v.Error),
			)
			return nil
		},
	}))
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.allowOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		// Leaving AllowHeaders empty reflects the preflight's requested headers.
		AllowCredentials: true,
	}))
	if s.requestTimeout > 0 {
		s.echo.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: s.requestTimeout,
		}))
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/scrape/:role", s.handleScrape)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr and serves until Shutdown is called, at which point
// it returns http.ErrServerClosed.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
