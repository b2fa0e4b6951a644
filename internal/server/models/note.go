package models

import "github.com/dmitrijs2005/drivenpass/internal/cryptox"

// Note is a stored free-text note. The body is the sensitive field.
type Note struct {
	Meta
	Note string `json:"note"`
}

func (n *Note) Seal(ci *cryptox.Cipher) error {
	body, err := ci.Encrypt(n.Note)
	if err != nil {
		return err
	}
	n.Note = body
	return nil
}

func (n *Note) Open(ci *cryptox.Cipher) error {
	body, err := ci.Decrypt(n.Note)
	if err != nil {
		return err
	}
	n.Note = body
	return nil
}
