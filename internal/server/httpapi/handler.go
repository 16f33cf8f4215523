package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Response bodies fixed by the wire contract. Handlers deliberately reply
// with the same unauthorized message whether the token is missing, bad, or
// lacks the required right, so a caller cannot tell which check failed.
const (
	msgWrongCredentials = "wrong username or password"
	msgUnauthorized     = "Unauthorized operation!"
	msgMissingName      = "Missing name parameter in the request!"
)

// handleLogin verifies credentials and issues a session token.
//
//	201 + serialized token  on success
//	404 + fixed message     on unknown (username, password)
//	500 + error description on any failure
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	account := &models.Account{}
	if err := json.NewDecoder(r.Body).Decode(account); err != nil {
		s.internalError(w, r, err)
		return
	}

	token, err := s.authorizer.GenerateToken(r.Context(), account)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if token == nil {
		s.logger.Info(r.Context(), "login rejected", "username", account.Username)
		writeText(w, http.StatusNotFound, msgWrongCredentials)
		return
	}

	s.logger.Info(r.Context(), "login succeeded", "username", account.Username)
	writeJSON(w, http.StatusCreated, token)
}

// handleGetUsers serves the protected user directory. Enforcement has
// already run; only the query itself is handled here.
func (s *Server) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeText(w, http.StatusBadRequest, msgMissingName)
		return
	}

	found, err := s.users.GetByName(r.Context(), name)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeText(w, http.StatusInternalServerError, "Internal error: "+err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
