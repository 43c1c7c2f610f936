package auth

import (
	"testing"
	"time"

	"backoffice/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(42, []string{"admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.AdminID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	otherService, err := NewJWTService(newTestConfig("a_completely_different_secret_key"))
	require.NoError(t, err)
	foreignToken, err := otherService.GenerateAccessToken(1, nil)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredToken, err := expired.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	nonNumeric := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	nonNumericToken, err := nonNumeric.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "7"})
	noExpiryToken, err := noExpiry.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreignToken},
		{name: "expired", token: expiredToken},
		{name: "non numeric subject", token: nonNumericToken},
		{name: "missing expiry", token: noExpiryToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
