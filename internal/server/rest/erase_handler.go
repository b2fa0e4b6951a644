package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/drivenpass/internal/common"
)

// Eraser deletes an account and all of its records.
type Eraser interface {
	Erase(ctx context.Context, userID int64, password string) error
}

type EraseHandler struct {
	eraser Eraser
}

func NewEraseHandler(eraser Eraser) *EraseHandler {
	return &EraseHandler{eraser: eraser}
}

// Erase deletes the authenticated user's account after a password re-check.
func (h *EraseHandler) Erase(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req eraseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.eraser.Erase(r.Context(), user.ID, req.Password); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid password.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Account and all associated data deleted."))
}
