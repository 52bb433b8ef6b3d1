package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-service"

func TestTokenService_IssuePair(t *testing.T) {
	svc := NewTokenService(testSecret, 15*time.Minute, 7*24*time.Hour, nil)

	pair, err := svc.IssuePair(context.Background(), "auth", Identity{ID: 42, Email: "ada@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims := parseClaims(t, pair.AccessToken)
	assert.Equal(t, "auth", claims["realm"])
	assert.Equal(t, "ada@example.com", claims["email"])
	assert.Equal(t, float64(42), claims["user_id"])
	assert.NotEmpty(t, claims["jti"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
}

func TestTokenService_RefreshOutlivesAccess(t *testing.T) {
	svc := NewTokenService(testSecret, time.Minute, time.Hour, nil)

	pair, err := svc.IssuePair(context.Background(), "auth", Identity{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	accessExp, err := parseClaims(t, pair.AccessToken).GetExpirationTime()
	require.NoError(t, err)
	refreshExp, err := parseClaims(t, pair.RefreshToken).GetExpirationTime()
	require.NoError(t, err)

	assert.True(t, refreshExp.After(accessExp.Time))
}

func TestTokenService_MissingSecret(t *testing.T) {
	svc := NewTokenService("", 15*time.Minute, time.Hour, nil)

	_, err := svc.IssuePair(context.Background(), "auth", Identity{ID: 1, Email: "a@b.c"})
	assert.Error(t, err)
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	return claims
}
