// Package users declares the storage contract for the user directory
// served by the data endpoint.
package users

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Repository defines operations over directory user records.
type Repository interface {
	// Put persists a new user record.
	Put(ctx context.Context, user *models.User) error

	// GetByName returns every user whose name contains the given fragment.
	// An empty result is not an error.
	GetByName(ctx context.Context, name string) ([]*models.User, error)
}
