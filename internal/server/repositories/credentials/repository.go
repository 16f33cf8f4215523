// Package credentials declares the storage contract for user credential
// records.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Repository defines operations over stored user credentials. Records are
// keyed by the (username, password) pair at lookup time; storage enforces
// no uniqueness, duplicates are tolerated and the first match wins.
type Repository interface {
	// Get returns the first record matching the exact (username, password)
	// pair, or common.ErrorNotFound when none matches. A non-match is an
	// expected outcome, not a failure.
	Get(ctx context.Context, username, password string) (*models.UserCredentials, error)

	// Put persists a new credential record. It does not reject duplicates.
	Put(ctx context.Context, creds *models.UserCredentials) error

	// Delete removes records matching the (username, password) pair of
	// creds. Zero removed records yield common.ErrorNotDeleted.
	Delete(ctx context.Context, creds *models.UserCredentials) error
}
