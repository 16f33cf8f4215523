// Package tokens provides a PostgreSQL-backed repository for session
// tokens. Access rights are stored as a JSONB array, keeping the record
// shape close to the document store it replaces.
package tokens

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

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Store inserts a session token record.
func (r *PostgresRepository) Store(ctx context.Context, token *models.SessionToken) error {
	rights, err := json.Marshal(token.AccessRights)
	if err != nil {
		return fmt.Errorf("marshalling access rights: %w", err)
	}

	query := `
		INSERT INTO session_tokens (token_id, user_name, access_rights, valid, expiration_time)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		token.TokenID, token.UserName, rights, token.Valid, token.ExpirationTime); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the token record matching tokenID, or common.ErrorNotFound.
// token_id carries no uniqueness constraint, so the query takes one row.
func (r *PostgresRepository) Get(ctx context.Context, tokenID string) (*models.SessionToken, error) {
	query := `
		SELECT token_id, user_name, access_rights, valid, expiration_time
		FROM session_tokens
		WHERE token_id = $1
		LIMIT 1
	`
	token := &models.SessionToken{}
	var rights []byte
	err := r.db.QueryRowContext(ctx, query, tokenID).Scan(
		&token.TokenID, &token.UserName, &rights, &token.Valid, &token.ExpirationTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(rights, &token.AccessRights); err != nil {
		return nil, fmt.Errorf("unmarshalling access rights: %w", err)
	}
	return token, nil
}

// Delete removes the token matching tokenID. Zero affected rows yield
// common.ErrorNotDeleted.
func (r *PostgresRepository) Delete(ctx context.Context, tokenID string) error {
	query := `
		DELETE FROM session_tokens
		WHERE token_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session token %w", common.ErrorNotDeleted)
	}
	return nil
}
