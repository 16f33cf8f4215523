// Package auth implements the session-token authorization core: credential
// verification, token issuance with a fixed TTL, and lazy token state
// classification.
package auth

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/tokens"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the fixed lifetime of an issued session token.
const DefaultTokenTTL = time.Hour

// TokenState classifies a session token at validation time.
type TokenState int

const (
	// TokenStateInvalid: no such token, or its valid flag is false.
	TokenStateInvalid TokenState = iota
	// TokenStateExpired: the token exists and is marked valid, but its
	// expiration time is in the past.
	TokenStateExpired
	// TokenStateValid: the token grants its stored access rights.
	TokenStateValid
)

func (s TokenState) String() string {
	switch s {
	case TokenStateValid:
		return "VALID"
	case TokenStateExpired:
		return "EXPIRED"
	default:
		return "INVALID"
	}
}

// ValidationResult is the outcome of validating a token id. It is derived
// on every call and never persisted. AccessRights is empty unless State is
// TokenStateValid.
type ValidationResult struct {
	AccessRights []int
	State        TokenState
}

// HasRight reports whether the result grants the given access right.
func (r *ValidationResult) HasRight(right int) bool {
	return slices.Contains(r.AccessRights, right)
}

// Authorizer decides whether a credential pair yields a session and whether
// a presented token id still grants access. Both stores are injected; the
// token store stays the source of truth for existence and field values, so
// external deletes are visible on the next validation.
type Authorizer struct {
	tokens      tokens.Repository
	credentials credentials.Repository
	tokenTTL    time.Duration

	// seams for deterministic tests
	now        func() time.Time
	newTokenID func() string
}

// NewAuthorizer constructs an Authorizer. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewAuthorizer(t tokens.Repository, c credentials.Repository, ttl time.Duration) *Authorizer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authorizer{
		tokens:      t,
		credentials: c,
		tokenTTL:    ttl,
		now:         time.Now,
		newTokenID:  uuid.NewString,
	}
}

// GenerateToken verifies the account against the credential store and, on a
// match, issues and persists a new session token expiring tokenTTL from
// now. A missing credential record yields (nil, nil) — absence is the sole
// failure signal for bad credentials — and nothing is written. Store
// failures propagate unchanged.
func (a *Authorizer) GenerateToken(ctx context.Context, account *models.Account) (*models.SessionToken, error) {
	creds, err := a.credentials.Get(ctx, account.Username, account.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}

	token := &models.SessionToken{
		TokenID:        a.newTokenID(),
		UserName:       creds.Username,
		AccessRights:   slices.Clone(creds.AccessRights),
		Valid:          true,
		ExpirationTime: a.now().Add(a.tokenTTL),
	}

	if err := a.tokens.Store(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// ValidateToken classifies the token id at the current point in time:
//
//  1. no stored record, or valid flag false  -> INVALID, no rights
//  2. expiration time strictly in the past   -> EXPIRED, no rights
//  3. otherwise                              -> VALID, stored rights
//
// The decision is read-only: expired records are left in the store and will
// classify as EXPIRED again on the next call unless something external
// deletes them.
func (a *Authorizer) ValidateToken(ctx context.Context, tokenID string) (*ValidationResult, error) {
	token, err := a.tokens.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &ValidationResult{AccessRights: []int{}, State: TokenStateInvalid}, nil
		}
		return nil, err
	}

	if !token.Valid {
		return &ValidationResult{AccessRights: []int{}, State: TokenStateInvalid}, nil
	}
	if token.Expired(a.now()) {
		return &ValidationResult{AccessRights: []int{}, State: TokenStateExpired}, nil
	}
	return &ValidationResult{AccessRights: token.AccessRights, State: TokenStateValid}, nil
}
