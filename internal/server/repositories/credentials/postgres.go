// Package credentials provides a PostgreSQL-backed repository for user
// credential records.
//
// Passwords are stored and matched in plaintext to preserve the observable
// behavior of the system this replaces (stored records, equality
// semantics). Known weakness; see the design notes before "fixing" it.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/dbx"
	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the first record matching the exact (username, password)
// pair, or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, username, password string) (*models.UserCredentials, error) {
	query := `
		SELECT username, password, access_rights
		FROM user_credentials
		WHERE username = $1 AND password = $2
		LIMIT 1
	`
	creds := &models.UserCredentials{}
	var rights []byte
	err := r.db.QueryRowContext(ctx, query, username, password).Scan(
		&creds.Username, &creds.Password, &rights)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(rights, &creds.AccessRights); err != nil {
		return nil, fmt.Errorf("unmarshalling access rights: %w", err)
	}
	return creds, nil
}

// Put inserts a credential record.
func (r *PostgresRepository) Put(ctx context.Context, creds *models.UserCredentials) error {
	rights, err := json.Marshal(creds.AccessRights)
	if err != nil {
		return fmt.Errorf("marshalling access rights: %w", err)
	}

	query := `
		INSERT INTO user_credentials (username, password, access_rights)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, creds.Username, creds.Password, rights); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes records matching the (username, password) pair. Zero
// affected rows yield common.ErrorNotDeleted.
func (r *PostgresRepository) Delete(ctx context.Context, creds *models.UserCredentials) error {
	query := `
		DELETE FROM user_credentials
		WHERE username = $1 AND password = $2
	`
	res, err := r.db.ExecContext(ctx, query, creds.Username, creds.Password)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user credentials %w", common.ErrorNotDeleted)
	}
	return nil
}
