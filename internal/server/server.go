// Package server exposes the analyzer over HTTP as a single JSON endpoint.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"minilang/internal/config"
	"minilang/internal/logging"
)

// Server wraps the HTTP server hosting the analysis endpoint
type Server struct {
	httpServer *http.Server
	logger     *logging.Logger
	cfg        *config.Config
}

// New creates a server from the given configuration
func New(cfg *config.Config, logger *logging.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/", NewHandler(cfg.CORS.AllowedOrigin, logger))

	handler := requestMiddleware(logger, recoverMiddleware(logger, mux))
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}
	return &Server{httpServer, logger, cfg}
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	s.logger.Info("Starting analysis server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down analysis server")
	return s.httpServer.Shutdown(ctx)
}

// requestMiddleware tags every request with an ID and logs its outcome
func requestMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// recoverMiddleware converts a handler panic into a generic internal error
// response instead of killing the connection.
func recoverMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("Handler panic", "path", r.URL.Path, "panic", v)
				internalError(w, v)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// responseWrapper wraps http.ResponseWriter to capture the status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
