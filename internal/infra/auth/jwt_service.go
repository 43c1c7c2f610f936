// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAccessTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// accessClaims is the wire form of an access token. The subject is the decimal admin id.
type accessClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
	}, nil
}

// GenerateAccessToken signs an access token for the admin.
func (s *jwtService) GenerateAccessToken(adminID uint64, roles []string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(adminID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks signature, algorithm and expiry, then parses the admin id from the subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	adminID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || adminID == 0 {
		return nil, errors.Errorf("invalid subject %q in token", claims.Subject)
	}

	return &service.Claims{
		AdminID:          adminID,
		Roles:            claims.Roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
