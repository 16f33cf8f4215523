package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/stretchr/testify/require"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeAuthorizer struct {
	genResp *models.SessionToken
	genErr  error

	validateResp    *auth.ValidationResult
	validateErr     error
	validatedTokens []string
}

func (f *fakeAuthorizer) GenerateToken(ctx context.Context, account *models.Account) (*models.SessionToken, error) {
	return f.genResp, f.genErr
}

func (f *fakeAuthorizer) ValidateToken(ctx context.Context, tokenID string) (*auth.ValidationResult, error) {
	f.validatedTokens = append(f.validatedTokens, tokenID)
	return f.validateResp, f.validateErr
}

type fakeUsersRepo struct {
	users []*models.User
	err   error
}

func (f *fakeUsersRepo) Put(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUsersRepo) GetByName(ctx context.Context, name string) ([]*models.User, error) {
	return f.users, f.err
}

// ---- helpers ----

func newTestServer(a *fakeAuthorizer, u *fakeUsersRepo) *Server {
	return NewServer("127.0.0.1:0", nopLogger{}, a, u)
}

func doRequest(t *testing.T, s *Server, method, target, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

var someSessionToken = &models.SessionToken{
	TokenID:        "someTokenId",
	UserName:       "someUserName",
	AccessRights:   []int{1, 2, 3},
	Valid:          true,
	ExpirationTime: time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
}

// ---- OPTIONS ----

func TestOptionsRequest_OK(t *testing.T) {
	s := newTestServer(&fakeAuthorizer{}, &fakeUsersRepo{})
	rec := doRequest(t, s, http.MethodOptions, "/login", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

// ---- /login ----

func TestLogin_ValidCredentials(t *testing.T) {
	a := &fakeAuthorizer{genResp: someSessionToken}
	s := newTestServer(a, &fakeUsersRepo{})

	rec := doRequest(t, s, http.MethodPost, "/login", `{"username":"test","password":"test"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.SessionToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, someSessionToken.TokenID, got.TokenID)
	require.Equal(t, someSessionToken.UserName, got.UserName)
	require.Equal(t, someSessionToken.AccessRights, got.AccessRights)
	require.True(t, got.Valid)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	a := &fakeAuthorizer{genResp: nil}
	s := newTestServer(a, &fakeUsersRepo{})

	rec := doRequest(t, s, http.MethodPost, "/login", `{"username":"wrong","password":"wrong"}`, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "wrong username or password", rec.Body.String())
}

func TestLogin_MalformedBody(t *testing.T) {
	s := newTestServer(&fakeAuthorizer{}, &fakeUsersRepo{})

	rec := doRequest(t, s, http.MethodPost, "/login", `4{"username":`, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.True(t, strings.HasPrefix(rec.Body.String(), "Internal error: "))
}

func TestLogin_AuthorizerFailure(t *testing.T) {
	a := &fakeAuthorizer{genErr: errors.New("something went wrong")}
	s := newTestServer(a, &fakeUsersRepo{})

	rec := doRequest(t, s, http.MethodPost, "/login", `{"username":"test","password":"test"}`, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Internal error: something went wrong", rec.Body.String())
}

// ---- /users ----

func TestGetUsers_Authorized(t *testing.T) {
	a := &fakeAuthorizer{validateResp: &auth.ValidationResult{
		AccessRights: []int{1, 2, 3},
		State:        auth.TokenStateValid,
	}}
	u := &fakeUsersRepo{users: []*models.User{{
		ID: "1234", Name: "Some Name", Age: 123,
		Email: "some@email.com", WorkingPosition: models.PositionProgrammer,
	}}}
	s := newTestServer(a, u)

	rec := doRequest(t, s, http.MethodGet, "/users?name=some", "", "tokenId")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, []string{"tokenId"}, a.validatedTokens)

	var got []*models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Some Name", got[0].Name)
}

func TestGetUsers_MissingNameParameter(t *testing.T) {
	a := &fakeAuthorizer{validateResp: &auth.ValidationResult{
		AccessRights: []int{1, 2, 3},
		State:        auth.TokenStateValid,
	}}
	s := newTestServer(a, &fakeUsersRepo{})

	rec := doRequest(t, s, http.MethodGet, "/users", "", "tokenId")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing name parameter in the request!", rec.Body.String())
}

func TestGetUsers_ValidatorFailure(t *testing.T) {
	a := &fakeAuthorizer{validateErr: errors.New("something went wrong")}
	s := newTestServer(a, &fakeUsersRepo{})

	rec := doRequest(t, s, http.MethodGet, "/users?name=some", "", "tokenId")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Internal error: something went wrong", rec.Body.String())
}

func TestGetUsers_RepositoryFailure(t *testing.T) {
	a := &fakeAuthorizer{validateResp: &auth.ValidationResult{
		AccessRights: []int{1},
		State:        auth.TokenStateValid,
	}}
	u := &fakeUsersRepo{err: errors.New("db down")}
	s := newTestServer(a, u)

	rec := doRequest(t, s, http.MethodGet, "/users?name=some", "", "tokenId")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Internal error: db down", rec.Body.String())
}

// All unauthorized variants must be indistinguishable to the caller:
// no header, unknown/invalid token, expired token, and a valid token that
// lacks the required right.
func TestGetUsers_UnauthorizedVariantsCollapse(t *testing.T) {
	tests := []struct {
		name       string
		authorizer *fakeAuthorizer
		header     string
	}{
		{
			name:       "no authorization header",
			authorizer: &fakeAuthorizer{},
			header:     "",
		},
		{
			name: "invalid token",
			authorizer: &fakeAuthorizer{validateResp: &auth.ValidationResult{
				AccessRights: []int{}, State: auth.TokenStateInvalid,
			}},
			header: "tokenId",
		},
		{
			name: "expired token",
			authorizer: &fakeAuthorizer{validateResp: &auth.ValidationResult{
				AccessRights: []int{}, State: auth.TokenStateExpired,
			}},
			header: "tokenId",
		},
		{
			name: "insufficient rights",
			authorizer: &fakeAuthorizer{validateResp: &auth.ValidationResult{
				AccessRights: []int{2, 3}, State: auth.TokenStateValid,
			}},
			header: "tokenId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.authorizer, &fakeUsersRepo{})
			rec := doRequest(t, s, http.MethodGet, "/users?name=some", "", tt.header)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, "Unauthorized operation!", rec.Body.String())
		})
	}
}

func TestGetUsers_NoHeaderSkipsValidation(t *testing.T) {
	a := &fakeAuthorizer{}
	s := newTestServer(a, &fakeUsersRepo{})

	_ = doRequest(t, s, http.MethodGet, "/users?name=some", "", "")

	require.Empty(t, a.validatedTokens, "validateToken must not run without a token id")
}
