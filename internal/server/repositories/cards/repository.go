package cards

import (
	"context"

	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, card *models.Card) (*models.Card, error)
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Card, error)
	FindByTitle(ctx context.Context, userID int64, title string) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
