package credentials

import (
	"context"

	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, credential *models.Credential) (*models.Credential, error)
	GetByID(ctx context.Context, id int64) (*models.Credential, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Credential, error)
	FindByTitle(ctx context.Context, userID int64, title string) (*models.Credential, error)
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
