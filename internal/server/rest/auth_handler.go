package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

// IdentityService is the slice of the user service the auth endpoints need.
type IdentityService interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

type AuthHandler struct {
	users IdentityService
}

func NewAuthHandler(users IdentityService) *AuthHandler {
	return &AuthHandler{users: users}
}

// SignUp creates an account. The password hash never appears in the response.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			writeError(w, http.StatusConflict, "A user with this email already exists.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// SignIn exchanges valid credentials for a bearer token.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
