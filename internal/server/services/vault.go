package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

// SecretRepository is the storage contract a Vault needs. Each per-kind
// repository (cards, credentials, notes) satisfies it for its record type.
type SecretRepository[T models.Secret] interface {
	Create(ctx context.Context, secret T) (T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	GetByUser(ctx context.Context, userID int64) ([]T, error)
	FindByTitle(ctx context.Context, userID int64, title string) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Vault implements the shared secret lifecycle for one record kind: records
// are sealed before they reach storage and opened before they leave the
// service, and every id-addressed access is checked against the owner.
type Vault[T models.Secret] struct {
	repo   SecretRepository[T]
	cipher *cryptox.Cipher
}

func NewVault[T models.Secret](repo SecretRepository[T], cipher *cryptox.Cipher) *Vault[T] {
	return &Vault[T]{repo: repo, cipher: cipher}
}

// Create stores a new record for the user. The title must be unique among
// the user's records of this kind; a duplicate yields common.ErrorConflict.
// The returned record is decrypted.
func (v *Vault[T]) Create(ctx context.Context, userID int64, secret T) (T, error) {
	var zero T

	if _, err := v.repo.FindByTitle(ctx, userID, secret.Label()); err == nil {
		return zero, common.ErrorConflict
	} else if !errors.Is(err, common.ErrorNotFound) {
		return zero, common.ErrorInternal
	}

	secret.SetOwner(userID)

	if err := secret.Seal(v.cipher); err != nil {
		return zero, fmt.Errorf("error encrypting secret: %w", err)
	}

	saved, err := v.repo.Create(ctx, secret)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return zero, common.ErrorConflict
		}
		return zero, fmt.Errorf("error saving secret: %w", err)
	}

	if err := saved.Open(v.cipher); err != nil {
		return zero, fmt.Errorf("error decrypting secret: %w", err)
	}

	return saved, nil
}

// List returns all of the user's records of this kind, decrypted. The result
// is never nil.
func (v *Vault[T]) List(ctx context.Context, userID int64) ([]T, error) {
	items, err := v.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing secrets: %w", err)
	}

	for _, item := range items {
		if err := item.Open(v.cipher); err != nil {
			return nil, fmt.Errorf("error decrypting secret: %w", err)
		}
	}

	return items, nil
}

// GetByID returns one decrypted record. A missing id yields
// common.ErrorNotFound; an id owned by another user yields
// common.ErrorForbidden. Existence is reported before ownership.
func (v *Vault[T]) GetByID(ctx context.Context, userID int64, id int64) (T, error) {
	var zero T

	secret, err := v.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return zero, common.ErrorNotFound
		}
		return zero, fmt.Errorf("error loading secret: %w", err)
	}

	if secret.Owner() != userID {
		return zero, common.ErrorForbidden
	}

	if err := secret.Open(v.cipher); err != nil {
		return zero, fmt.Errorf("error decrypting secret: %w", err)
	}

	return secret, nil
}

// Delete removes one record, applying the same existence and ownership
// checks as GetByID.
func (v *Vault[T]) Delete(ctx context.Context, userID int64, id int64) error {
	if _, err := v.GetByID(ctx, userID, id); err != nil {
		return err
	}

	if err := v.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting secret: %w", err)
	}

	return nil
}
