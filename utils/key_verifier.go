package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// KeyVerifier reports whether a caller-supplied key authorizes a deletion.
type KeyVerifier func(key string) bool

// PlainKeyVerifier compares against a shared secret held in memory.
func PlainKeyVerifier(secret string) KeyVerifier {
	want := []byte(secret)
	return func(key string) bool {
		return subtle.ConstantTimeCompare([]byte(key), want) == 1
	}
}

// BcryptKeyVerifier checks keys against a bcrypt hash of the shared secret,
// so the plaintext never has to live in the environment.
func BcryptKeyVerifier(hash string) KeyVerifier {
	h := []byte(hash)
	return func(key string) bool {
		return bcrypt.CompareHashAndPassword(h, []byte(key)) == nil
	}
}
