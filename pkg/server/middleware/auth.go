package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/doodlesbykumbi/notes-in-go/pkg/identity"
	"github.com/doodlesbykumbi/notes-in-go/pkg/token"
)

// Authenticator is middleware that validates bearer tokens. It is the only
// place request credentials are examined; handlers behind it read the
// caller from the request context.
type Authenticator struct {
	Issuer *token.Issuer
}

// NewAuthenticator creates a new bearer token authenticator middleware
func NewAuthenticator(issuer *token.Issuer) *Authenticator {
	return &Authenticator{Issuer: issuer}
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			unauthorized(w, "Authorization missing")
			return
		}

		tokenStr, err := token.FromHeader(authHeader)
		if err != nil {
			unauthorized(w, "Malformed authorization header")
			return
		}

		claims, err := a.Issuer.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				unauthorized(w, "Token expired")
				return
			}
			unauthorized(w, "Invalid token")
			return
		}

		// iat is optional in a signed token, so the claim may be nil.
		id := &identity.Identity{UserID: claims.Subject}
		if claims.IssuedAt != nil {
			id.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			id.ExpiresAt = claims.ExpiresAt.Time
		}

		r = r.WithContext(identity.Set(r.Context(), id))
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
