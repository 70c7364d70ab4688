// Package token issues and verifies the bearer tokens used to
// authenticate API requests.
//
// Tokens are JWTs signed with HMAC-SHA256. The subject claim carries the
// user's ID; issued-at and expiry are always set. Verification accepts
// HS256 only, so a token signed with any other algorithm is rejected
// before its claims are examined.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token fails verification for any
	// reason other than expiry: bad signature, wrong algorithm, malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a well-formed, correctly signed
	// token is past its expiry.
	ErrExpiredToken = errors.New("token expired")

	// ErrMalformedAuthHeader is returned by FromHeader when the
	// Authorization header is missing or not a Bearer credential.
	ErrMalformedAuthHeader = errors.New("malformed authorization header")
)

// Issuer signs and verifies tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer. The secret must be non-empty; callers are
// expected to validate it before constructing the Issuer.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue returns a signed token for the given user ID, valid for the
// issuer's TTL.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a token string and returns its claims.
// Expired tokens yield ErrExpiredToken; every other failure yields
// ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// FromHeader extracts the raw token from an Authorization header value of
// the form "Bearer <token>".
func FromHeader(authorization string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return "", ErrMalformedAuthHeader
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authorization, prefix))
	if raw == "" {
		return "", ErrMalformedAuthHeader
	}
	return raw, nil
}
