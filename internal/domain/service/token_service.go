package service

import "github.com/golang-jwt/jwt/v5"

// Claims are the verified contents of an admin access token.
type Claims struct {
	AdminID uint64
	Roles   []string
	jwt.RegisteredClaims
}

// TokenService issues and verifies admin access tokens.
// Admin login lives outside this service; GenerateAccessToken exists for tooling and tests.
type TokenService interface {
	// GenerateAccessToken signs a token whose subject is the admin id.
	GenerateAccessToken(adminID uint64, roles []string) (string, error)

	// ValidateToken verifies signature and expiry and extracts the admin id.
	ValidateToken(tokenString string) (*Claims, error)
}
