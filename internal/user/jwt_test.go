package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func parseToken(t *testing.T, token, secret string) *JwtCustomClaims {
	claims := &JwtCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	return claims
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	mockGenerateJWT = nil
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42)
	assert.NoError(t, err)

	claims := parseToken(t, token, "test-secret")
	assert.Equal(t, uint(42), claims.UserID)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, defaultTokenTTL.Seconds(), ttl.Seconds(), 60)
}

func TestGenerateJWT_TTLFromEnv(t *testing.T) {
	mockGenerateJWT = nil
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "1")

	token, err := GenerateJWT(7)
	assert.NoError(t, err)

	claims := parseToken(t, token, "test-secret")
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 60)
}
