package users

import (
	"context"
	"fmt"

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

// Put inserts a user record.
func (r *PostgresRepository) Put(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, age, email, working_position)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Age, user.Email, user.WorkingPosition); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByName returns users whose name contains the given fragment,
// case-insensitively.
func (r *PostgresRepository) GetByName(ctx context.Context, name string) ([]*models.User, error) {
	query := `
		SELECT id, name, age, email, working_position
		FROM users
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Age, &user.Email, &user.WorkingPosition); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
