package context

import (
	"folio/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// SetUsername records the authenticated admin on the echo.Context.
func SetUsername(c echo.Context, username string) {
	c.Set(constants.ContextKeyUsername, username)
}

// GetUsername returns the authenticated admin set by the auth middleware.
func GetUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(constants.ContextKeyUsername).(string)

	return username, ok && username != ""
}
