// Package web exposes the collection tracker as a small JSON HTTP API.
package web

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hpungsan/cardex/internal/config"
)

// NewServer creates and configures the HTTP server for the card API.
func NewServer(db *sql.DB, cfg *config.Config, logger *zap.Logger) *http.Server {
	h := &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	mux := http.NewServeMux()

	// Routes using Go 1.22+ pattern syntax
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /cards", h.HandleListCards)
	mux.HandleFunc("POST /cards", h.HandleSearchCards)
	mux.HandleFunc("PUT /cards", h.HandleUpdateCard)
	mux.HandleFunc("GET /series", h.HandleListSeries)

	handler := securityHeaders(requestLogger(logger, mux))

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Bind, cfg.Port),
		Handler: handler,
	}
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// requestLogger tags each request with a ULID and logs it on completion.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server, logger *zap.Logger) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("card API running", zap.String("addr", srv.Addr))

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		logger.Warn("server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
