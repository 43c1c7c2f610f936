package context

import "github.com/labstack/echo/v4"

// Echo context keys set by the authentication middleware.
const (
	KeyAdminID = "userID"
	KeyRoles   = "roles"
)

// SetCaller stores the authenticated admin on the echo context.
func SetCaller(c echo.Context, adminID uint64, roles []string) {
	c.Set(KeyAdminID, adminID)
	c.Set(KeyRoles, roles)
}

// GetAdminID returns the authenticated admin id. ok is false on unauthenticated routes.
func GetAdminID(c echo.Context) (uint64, bool) {
	adminID, ok := c.Get(KeyAdminID).(uint64)

	return adminID, ok && adminID != 0
}

// GetRoles returns the roles of the authenticated admin.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(KeyRoles).([]string)

	return roles, ok
}
