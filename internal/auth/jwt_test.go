package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "42", "collector@example.com", "collector")
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "collector@example.com", claims.Email)
	assert.Equal(t, "collector", claims.Username)
	assert.Equal(t, "numisvault", claims.Issuer)

	// Expiry sits a full day out.
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 23*time.Hour)
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "42", "collector@example.com", "collector")
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := VerifyToken(testSecret, tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	claims := Claims{
		UserID: "42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTokenRejectsMissingSubject(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
