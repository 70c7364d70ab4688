package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	other := NewIssuer([]byte("a-different-secret"), time.Hour)

	tok, err := other.Issue("user-123")
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer(testSecret, -time.Minute)

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTampered(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	claims, err := issuer.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	// alg=none tokens must never verify, whatever their claims say.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	claims, err := issuer.Verify("not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{
			name:   "bearer token",
			header: "Bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: ErrMalformedAuthHeader,
		},
		{
			name:    "wrong scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrMalformedAuthHeader,
		},
		{
			name:    "bearer with no token",
			header:  "Bearer ",
			wantErr: ErrMalformedAuthHeader,
		},
		{
			name:    "lowercase scheme",
			header:  "bearer abc.def.ghi",
			wantErr: ErrMalformedAuthHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := FromHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, raw)
		})
	}
}
