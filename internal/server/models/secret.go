package models

import "github.com/dmitrijs2005/drivenpass/internal/cryptox"

// Secret is the behavior shared by all vault record kinds: every record is
// owned by exactly one user, carries a per-owner-unique title, and knows how
// to encrypt (Seal) and decrypt (Open) its own sensitive fields.
//
// Implemented by *Card, *Credential and *Note, which lets one generic vault
// service cover all three kinds.
type Secret interface {
	Owner() int64
	SetOwner(id int64)
	Label() string
	Seal(c *cryptox.Cipher) error
	Open(c *cryptox.Cipher) error
}

// Meta carries the fields common to every secret record. The owning user id
// is set once at creation and never changes afterwards.
type Meta struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
}

func (m *Meta) Owner() int64 { return m.UserID }

func (m *Meta) SetOwner(id int64) { m.UserID = id }

func (m *Meta) Label() string { return m.Title }
