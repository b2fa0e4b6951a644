package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/drivenpass/internal/dbx"
	"github.com/dmitrijs2005/drivenpass/internal/server/repositories/cards"
	"github.com/dmitrijs2005/drivenpass/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/drivenpass/internal/server/repositories/notes"
	"github.com/dmitrijs2005/drivenpass/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cards(db dbx.DBTX) cards.Repository
	Credentials(db dbx.DBTX) credentials.Repository
	Notes(db dbx.DBTX) notes.Repository
}
