package cryptox

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCipher_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewCipher("")
	if !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	c, err := NewCipher("test-secret")
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	for _, plaintext := range []string{"", "p4ssw0rd", "123", strings.Repeat("x", 4096), "текст с юникодом"} {
		ct, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if ct == plaintext && plaintext != "" {
			t.Fatalf("ciphertext equals plaintext")
		}

		got, err := c.Decrypt(ct)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
		}
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	t.Parallel()

	c, _ := NewCipher("test-secret")

	a, err := c.Encrypt("same value")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b, err := c.Encrypt("same value")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if a == b {
		t.Fatalf("two encryptions of the same value produced identical ciphertext")
	}
}

func TestDecrypt_WrongSecret(t *testing.T) {
	t.Parallel()

	c1, _ := NewCipher("secret-one")
	c2, _ := NewCipher("secret-two")

	ct, err := c1.Encrypt("sensitive")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := c2.Decrypt(ct); err == nil {
		t.Fatalf("expected error decrypting with the wrong secret")
	}
}

func TestDecrypt_MalformedInput(t *testing.T) {
	t.Parallel()

	c, _ := NewCipher("test-secret")

	for _, bad := range []string{"", "not base64 at all!!!", "YWJj"} {
		if _, err := c.Decrypt(bad); err == nil {
			t.Fatalf("expected error for input %q", bad)
		}
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	t.Parallel()

	c, _ := NewCipher("test-secret")

	ct, err := c.Encrypt("sensitive")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	tampered := []byte(ct)
	i := len(tampered) / 2
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	if _, err := c.Decrypt(string(tampered)); err == nil {
		t.Fatalf("expected error for tampered ciphertext")
	}
}
