package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/dbx"
	"github.com/dmitrijs2005/drivenpass/internal/server/repositories/repomanager"
)

// EraseService deletes an account and everything it owns in one transaction.
type EraseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEraseService(db *sql.DB, m repomanager.RepositoryManager) *EraseService {
	return &EraseService{db: db, repomanager: m}
}

// Erase removes the user's cards, notes, credentials and finally the account
// itself. The current password must be re-supplied; a mismatch yields
// common.ErrorUnauthorized and nothing is deleted. Partial deletion is never
// observable.
func (s *EraseService) Erase(ctx context.Context, userID int64, password string) error {

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return common.ErrorUnauthorized
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Cards(tx).DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting cards: %w", err)
		}
		if err := s.repomanager.Notes(tx).DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting notes: %w", err)
		}
		if err := s.repomanager.Credentials(tx).DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error deleting credentials: %w", err)
		}
		if err := s.repomanager.Users(tx).Delete(ctx, userID); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	return nil
}
