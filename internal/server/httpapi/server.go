// Package httpapi exposes the service over HTTP: the login endpoint that
// issues session tokens and the protected user-directory endpoint guarded
// by access-right enforcement.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/users"
	"github.com/go-chi/chi/v5"
)

// Authorizer is the slice of the auth core the HTTP layer depends on.
type Authorizer interface {
	GenerateToken(ctx context.Context, account *models.Account) (*models.SessionToken, error)
	ValidateToken(ctx context.Context, tokenID string) (*auth.ValidationResult, error)
}

type Server struct {
	address    string
	logger     logging.Logger
	authorizer Authorizer
	users      users.Repository
}

func NewServer(address string, l logging.Logger, a Authorizer, u users.Repository) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "http_server"),
		authorizer: a,
		users:      u,
	}
}

// Handler assembles the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.logRequests)

	// the original service answers every OPTIONS probe with 200
	r.Options("/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAccessRight(models.RightRead))
		r.Get("/users", s.handleGetUsers)
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
