// Package tokens declares the storage contract for session tokens.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Repository defines operations for persisting, retrieving and removing
// session tokens. The store is the source of truth for token existence and
// field values; nothing in the service caches token records.
type Repository interface {
	// Store persists a new session token record.
	Store(ctx context.Context, token *models.SessionToken) error

	// Get looks up a token by its id. Absent tokens yield
	// common.ErrorNotFound. Duplicate ids are not prevented by a
	// constraint; implementations return a single match.
	Get(ctx context.Context, tokenID string) (*models.SessionToken, error)

	// Delete removes the token with the given id. When no record matched,
	// implementations return common.ErrorNotDeleted rather than succeeding
	// silently.
	Delete(ctx context.Context, tokenID string) error
}
