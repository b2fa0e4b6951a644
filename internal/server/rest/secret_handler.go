package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

// SecretService is the slice of the vault service the record endpoints need.
// Satisfied by services.Vault for each record kind.
type SecretService[T models.Secret] interface {
	Create(ctx context.Context, userID int64, secret T) (T, error)
	List(ctx context.Context, userID int64) ([]T, error)
	GetByID(ctx context.Context, userID int64, id int64) (T, error)
	Delete(ctx context.Context, userID int64, id int64) error
}

// SecretHandler serves one record kind. The kind name only affects the
// user-facing error messages; parse supplies the kind's decoding and
// validation.
type SecretHandler[T models.Secret] struct {
	service SecretService[T]
	kind    string
	parse   func(r *http.Request) (T, error)
}

func NewSecretHandler[T models.Secret](service SecretService[T], kind string, parse func(r *http.Request) (T, error)) *SecretHandler[T] {
	return &SecretHandler[T]{service: service, kind: kind, parse: parse}
}

func (h *SecretHandler[T]) notFoundMsg() string {
	return fmt.Sprintf("%s not found.", h.kind)
}

func (h *SecretHandler[T]) conflictMsg() string {
	return fmt.Sprintf("A %s with this title already exists.", strings.ToLower(h.kind))
}

// Create stores a new record for the authenticated user.
func (h *SecretHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	secret, err := h.parse(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.service.Create(r.Context(), user.ID, secret)
	if err != nil {
		writeServiceError(w, err, h.notFoundMsg(), h.conflictMsg())
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// GetOrList returns all of the user's records, or a single one when the id
// query parameter is present.
func (h *SecretHandler[T]) GetOrList(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	raw := r.URL.Query().Get("id")
	if raw == "" {
		items, err := h.service.List(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err, h.notFoundMsg(), h.conflictMsg())
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	secret, err := h.service.GetByID(r.Context(), user.ID, id)
	if err != nil {
		writeServiceError(w, err, h.notFoundMsg(), h.conflictMsg())
		return
	}

	writeJSON(w, http.StatusOK, secret)
}

// Delete removes one record by its path id.
func (h *SecretHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, id); err != nil {
		writeServiceError(w, err, h.notFoundMsg(), h.conflictMsg())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
