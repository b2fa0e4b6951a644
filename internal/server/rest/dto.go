package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

// Request bodies. Validation runs at the edge so the services only ever see
// well-formed input.

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type eraseRequest struct {
	Password string `json:"password" validate:"required"`
}

type credentialRequest struct {
	Title    string `json:"title" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *credentialRequest) toModel() (*models.Credential, error) {
	return &models.Credential{
		Meta:     models.Meta{Title: r.Title},
		URL:      r.URL,
		Username: r.Username,
		Password: r.Password,
	}, nil
}

type cardRequest struct {
	Title    string `json:"title" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Number   string `json:"number" validate:"required,numeric,min=13,max=16"`
	Code     string `json:"code" validate:"required,numeric,len=3"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Password string `json:"password" validate:"required,numeric,len=4"`
	Virtual  *bool  `json:"virtual" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=CREDIT DEBIT BOTH"`
}

func (r *cardRequest) toModel() (*models.Card, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid expiration date: %w", err)
	}
	return &models.Card{
		Meta:     models.Meta{Title: r.Title},
		Name:     r.Name,
		Number:   r.Number,
		Code:     r.Code,
		Date:     date,
		Password: r.Password,
		Virtual:  *r.Virtual,
		Type:     models.CardType(r.Type),
	}, nil
}

type noteRequest struct {
	Title string `json:"title" validate:"required"`
	Note  string `json:"note" validate:"required"`
}

func (r *noteRequest) toModel() (*models.Note, error) {
	return &models.Note{
		Meta: models.Meta{Title: r.Title},
		Note: r.Note,
	}, nil
}

// decodeAndValidate unmarshals the request body into dst and runs the
// declared validation tags.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// ParseCardRequest decodes and validates a card body.
func ParseCardRequest(r *http.Request) (*models.Card, error) {
	var req cardRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return nil, err
	}
	return req.toModel()
}

// ParseCredentialRequest decodes and validates a credential body.
func ParseCredentialRequest(r *http.Request) (*models.Credential, error) {
	var req credentialRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return nil, err
	}
	return req.toModel()
}

// ParseNoteRequest decodes and validates a note body.
func ParseNoteRequest(r *http.Request) (*models.Note, error) {
	var req noteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return nil, err
	}
	return req.toModel()
}
