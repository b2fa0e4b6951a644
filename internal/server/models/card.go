package models

import (
	"time"

	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
)

// CardType tells how a stored card can be used.
type CardType string

const (
	CardTypeCredit CardType = "CREDIT"
	CardTypeDebit  CardType = "DEBIT"
	CardTypeBoth   CardType = "BOTH"
)

// Valid reports whether t is one of the known card types.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeCredit, CardTypeDebit, CardTypeBoth:
		return true
	}
	return false
}

// Card is a stored payment card. Code (the CVV) and Password (the 4-digit
// PIN) are the sensitive fields: ciphertext at rest, plaintext in responses.
type Card struct {
	Meta
	Name     string    `json:"name"`
	Number   string    `json:"number"`
	Code     string    `json:"code"`
	Date     time.Time `json:"date"`
	Password string    `json:"password"`
	Virtual  bool      `json:"virtual"`
	Type     CardType  `json:"type"`
}

func (c *Card) Seal(ci *cryptox.Cipher) error {
	code, err := ci.Encrypt(c.Code)
	if err != nil {
		return err
	}
	password, err := ci.Encrypt(c.Password)
	if err != nil {
		return err
	}
	c.Code, c.Password = code, password
	return nil
}

func (c *Card) Open(ci *cryptox.Cipher) error {
	code, err := ci.Decrypt(c.Code)
	if err != nil {
		return err
	}
	password, err := ci.Decrypt(c.Password)
	if err != nil {
		return err
	}
	c.Code, c.Password = code, password
	return nil
}
