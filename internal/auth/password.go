package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptySecret is returned when an empty password is submitted for hashing.
var ErrEmptySecret = errors.New("secret must not be empty")

// HashPassword produces a salted bcrypt digest of the secret. Two calls on the
// same input yield different digests; both verify against the original secret.
func HashPassword(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether secret matches the stored bcrypt digest.
// A malformed stored digest counts as a mismatch, never as a fault.
func CheckPassword(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
