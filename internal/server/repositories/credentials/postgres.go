// Package credentials provides the PostgreSQL-backed repository for website
// login records. The password column holds ciphertext.
package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/dbx"
	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

// PostgresRepository implements credential storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a credential. A duplicate (user_id, title) surfaces as
// common.ErrorConflict via the table's unique constraint.
func (r *PostgresRepository) Create(ctx context.Context, credential *models.Credential) (*models.Credential, error) {

	query :=
		`INSERT INTO credentials (user_id, title, url, username, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		credential.UserID, credential.Title, credential.URL,
		credential.Username, credential.Password).Scan(&credential.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Credential, error) {
	query :=
		`SELECT id, user_id, title, url, username, password
		 FROM credentials
		 WHERE id = $1
		 `

	credential := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&credential.ID, &credential.UserID, &credential.Title,
		&credential.URL, &credential.Username, &credential.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID int64) ([]*models.Credential, error) {
	query :=
		`SELECT id, user_id, title, url, username, password
		 FROM credentials
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Credential, 0)
	for rows.Next() {
		var item models.Credential
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.URL, &item.Username, &item.Password,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) FindByTitle(ctx context.Context, userID int64, title string) (*models.Credential, error) {
	query :=
		`SELECT id, user_id, title, url, username, password
		 FROM credentials
		 WHERE user_id = $1 AND title = $2
		 `

	credential := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, userID, title).Scan(
		&credential.ID, &credential.UserID, &credential.Title,
		&credential.URL, &credential.Username, &credential.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM credentials WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM credentials WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
