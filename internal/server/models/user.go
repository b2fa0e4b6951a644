// Package models defines the persistent entities of the vault: the User who
// owns everything, and the three secret record kinds (Card, Credential, Note).
package models

// User is the account that owns secret records. Password holds only the
// bcrypt hash of the sign-up password and is never serialized in responses.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
