package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed indicates the credential could not be parsed into its claims.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenBadSignature indicates the signature does not match the claimed fields.
	ErrTokenBadSignature = errors.New("token signature is invalid")
	// ErrTokenExpired indicates the credential's lifetime has elapsed.
	ErrTokenExpired = errors.New("token is expired")
)

// Codec issues and verifies signed bearer credentials. Verification is a pure
// function of (token, now, key); no server-side lookup is involved, so any
// process holding the same key can verify a token issued by another.
type Codec struct {
	key []byte
	ttl time.Duration
}

func NewCodec(key []byte, ttl time.Duration) *Codec {
	return &Codec{key: key, ttl: ttl}
}

// TTL returns the configured credential lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a credential for the given principal, valid from now until
// now+TTL. The claims are HMAC-signed (HS256), readable but tamper-evident.
func (c *Codec) Issue(principalID string, now time.Time) (string, error) {
	if principalID == "" {
		return "", fmt.Errorf("principal id is required")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   principalID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})

	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the credential's signature and lifetime against now and
// returns the principal it was issued to.
func (c *Codec) Verify(tokenString string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	default:
		return "", ErrTokenMalformed
	}

	if claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
