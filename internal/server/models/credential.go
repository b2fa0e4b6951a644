package models

import "github.com/dmitrijs2005/drivenpass/internal/cryptox"

// Credential is a stored website login. Password is the sensitive field.
type Credential struct {
	Meta
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Credential) Seal(ci *cryptox.Cipher) error {
	password, err := ci.Encrypt(c.Password)
	if err != nil {
		return err
	}
	c.Password = password
	return nil
}

func (c *Credential) Open(ci *cryptox.Cipher) error {
	password, err := ci.Decrypt(c.Password)
	if err != nil {
		return err
	}
	c.Password = password
	return nil
}
