// Package cryptox implements the symmetric field cipher used to keep
// sensitive secret fields encrypted at rest. Values are encrypted with
// AES-256-GCM under a single process-wide secret and transported as
// base64 strings with the nonce prepended to the ciphertext.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrEmptySecret = errors.New("cryptox: empty secret")

// Cipher encrypts and decrypts short string fields. It is safe for
// concurrent use; the underlying AEAD is read-only after construction.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives a 256-bit AES key from the given secret (SHA-256) and
// returns a ready-to-use Cipher. An empty secret is a configuration error
// and must abort startup.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("cryptox: cipher init error: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: gcm init error: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh random nonce and returns
// base64(nonce || ciphertext).
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("cryptox: nonce error: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.URLEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. It fails on malformed input or when the
// ciphertext was produced under a different secret.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	data, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("cryptox: decode error: %w", err)
	}

	ns := c.aead.NonceSize()
	if len(data) < ns {
		return "", errors.New("cryptox: ciphertext too short")
	}

	plaintext, err := c.aead.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("cryptox: decrypt error: %w", err)
	}

	return string(plaintext), nil
}
