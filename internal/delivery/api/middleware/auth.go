package middleware

import (
	"strings"

	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates back-office admins by their access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the admin on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		deliverycontext.SetCaller(c, claims.AdminID, claims.Roles)

		return next(c)
	}
}
