// Package cards provides the PostgreSQL-backed repository for payment card
// records. CVV and PIN columns hold ciphertext; this layer never sees
// plaintext secrets.
package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/dbx"
	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

// PostgresRepository implements card storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a card. A duplicate (user_id, title) surfaces as
// common.ErrorConflict via the table's unique constraint.
func (r *PostgresRepository) Create(ctx context.Context, card *models.Card) (*models.Card, error) {

	query :=
		`INSERT INTO cards (user_id, title, name, number, code, date, password, virtual, type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		card.UserID, card.Title, card.Name, card.Number, card.Code,
		card.Date, card.Password, card.Virtual, card.Type).Scan(&card.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return card, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	query :=
		`SELECT id, user_id, title, name, number, code, date, password, virtual, type
		 FROM cards
		 WHERE id = $1
		 `

	card := &models.Card{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.UserID, &card.Title, &card.Name, &card.Number,
		&card.Code, &card.Date, &card.Password, &card.Virtual, &card.Type)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return card, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID int64) ([]*models.Card, error) {
	query :=
		`SELECT id, user_id, title, name, number, code, date, password, virtual, type
		 FROM cards
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Card, 0)
	for rows.Next() {
		var item models.Card
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Name, &item.Number,
			&item.Code, &item.Date, &item.Password, &item.Virtual, &item.Type,
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

func (r *PostgresRepository) FindByTitle(ctx context.Context, userID int64, title string) (*models.Card, error) {
	query :=
		`SELECT id, user_id, title, name, number, code, date, password, virtual, type
		 FROM cards
		 WHERE user_id = $1 AND title = $2
		 `

	card := &models.Card{}
	err := r.db.QueryRowContext(ctx, query, userID, title).Scan(
		&card.ID, &card.UserID, &card.Title, &card.Name, &card.Number,
		&card.Code, &card.Date, &card.Password, &card.Virtual, &card.Type)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return card, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cards WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM cards WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
