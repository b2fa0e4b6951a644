package notes

import (
	"context"

	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

// Repository describes the persistence operations for free-text notes.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Note, error)
	FindByTitle(ctx context.Context, userID int64, title string) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
