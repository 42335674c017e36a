// Package web serves the page over HTTP: a form that adds tasks, a checkbox
// per task that checks it off, and a button that appends a greeting.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/idilsaglam/daylist/internal/session"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Server owns one session. Every request that touches it holds mu for its
// whole duration, so handlers run to completion one at a time.
type Server struct {
	mu     sync.Mutex
	sess   *session.Session
	logger *slog.Logger
	router *mux.Router
}

// NewServer builds the router for sess. A nil logger discards logs.
func NewServer(sess *session.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{sess: sess, logger: logger, router: mux.NewRouter()}
	RegisterRoutes(s.router, s)
	return s
}

// Handler returns the router wrapped with access logging and panic recovery.
func (s *Server) Handler(accessLog io.Writer) http.Handler {
	var h http.Handler = s.router
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	if accessLog != nil {
		h = handlers.CombinedLoggingHandler(accessLog, h)
	}
	return h
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, accessLog io.Writer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(accessLog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// persist saves the session after an event; failures are logged, the page
// keeps working from memory.
func (s *Server) persist(ctx context.Context) {
	if err := s.sess.Save(ctx); err != nil {
		s.logger.Error("persist session", "err", err)
	}
}
