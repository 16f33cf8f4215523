package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
)

// requireAccessRight gates a route on the caller's session token. The token
// id is taken raw from the Authorization header. Absent header, non-VALID
// token and missing right all collapse into one identical unauthorized
// response; only a validator failure surfaces differently, as an internal
// error.
func (s *Server) requireAccessRight(right int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenID := r.Header.Get(common.AuthorizationHeaderName)
			if tokenID == "" {
				writeText(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			result, err := s.authorizer.ValidateToken(r.Context(), tokenID)
			if err != nil {
				s.internalError(w, r, err)
				return
			}
			if result.State != auth.TokenStateValid || !result.HasRight(right) {
				s.logger.Info(r.Context(), "request not authorized",
					"path", r.URL.Path, "state", result.State.String())
				writeText(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// logRequests logs every request with its final status code and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.Debug(r.Context(), "request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration", time.Since(start).String(),
		)
	})
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
