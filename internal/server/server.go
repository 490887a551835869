// Package server provides the HTTP surface of the CV site: the rendered
// page, its print variant, the GraphQL read API, and the static assets.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ducban/minimalist-cv/internal/api"
	"github.com/ducban/minimalist-cv/internal/palette"
	"github.com/ducban/minimalist-cv/internal/profile"
	"github.com/ducban/minimalist-cv/internal/render"
	"github.com/ducban/minimalist-cv/internal/server/ratelimit"
	"github.com/ducban/minimalist-cv/internal/wire"
)

//go:embed static
var staticFiles embed.FS

// Server serves one immutable record over HTTP.
type Server struct {
	httpServer  *http.Server
	logger      *zap.Logger
	profile     *profile.Profile
	renderer    *render.Renderer
	api         *api.Service
	actions     []byte
	production  bool
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration.
type Config struct {
	Addr       string
	Production bool
	Profile    *profile.Profile
	Logger     *zap.Logger
	RateLimit  *ratelimit.Config
}

// New creates a new server instance. The record is fixed for the lifetime of
// the process; every surface reads from the same copy.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Profile == nil {
		return nil, fmt.Errorf("profile record is required")
	}

	renderer, err := render.New(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build page renderer: %w", err)
	}

	actions, err := json.Marshal(palette.ActionsFor(cfg.Profile))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette actions: %w", err)
	}

	s := &Server{
		logger:     logger,
		profile:    cfg.Profile,
		renderer:   renderer,
		actions:    actions,
		production: cfg.Production,
	}

	// A schema failure degrades the API to fixed unavailable responses;
	// the page keeps serving either way.
	s.api = api.New(api.Config{
		Fetch: func(context.Context) (*wire.Profile, error) {
			return wire.FromProfile(s.profile), nil
		},
		Production: cfg.Production,
		Logger:     logger,
	})

	s.rateLimiter = ratelimit.NewLimiter(cfg.RateLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /print", s.handlePrint)
	mux.HandleFunc("/graphql", s.handleGraphQL)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /static/", cacheStatic(http.FileServerFS(staticFiles)))

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.logger.Info("server stopped")
	return nil
}

// handleHome serves the rendered page. In non-production a pending query
// parameter previews the loading skeletons.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	opts := render.DocumentOptions{PaletteActions: s.actions}
	if !s.production && r.URL.Query().Get("pending") != "" {
		opts.Pending = true
	}
	s.page(w, opts)
}

// handlePrint serves the print variant of the page.
func (s *Server) handlePrint(w http.ResponseWriter, _ *http.Request) {
	s.page(w, render.DocumentOptions{PrintMode: true})
}

func (s *Server) page(w http.ResponseWriter, opts render.DocumentOptions) {
	html, err := s.renderer.Document(s.profile, opts)
	if err != nil {
		s.logger.Error("page render failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(html); err != nil {
		s.logger.Error("failed to write page response", zap.Error(err))
	}
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode json response", zap.Error(err))
	}
}

// withCORS adds CORS headers. The API is public and read-only.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// cacheStatic marks embedded assets cacheable. They only change with a new
// binary, so a day is safe.
func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := newRequestID()
		w.Header().Set("X-Request-ID", requestID)

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.Status()),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

func newRequestID() string {
	return uuid.NewString()
}

// statusWriter records the status code written to the response so the
// logging middleware can report it.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

func (sw *statusWriter) Status() int {
	if sw.status == 0 {
		return http.StatusOK
	}
	return sw.status
}

// withRateLimit throttles clients by IP. Health checks and static assets
// stay exempt so probes and asset fetches never starve the page.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if exemptFromRateLimit(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		allowed, info := s.rateLimiter.Allow(clientID(r))
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func exemptFromRateLimit(path string) bool {
	if path == "/healthz" {
		return true
	}
	return len(path) >= len("/static/") && path[:len("/static/")] == "/static/"
}

// clientID identifies the client by IP address from RemoteAddr.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
