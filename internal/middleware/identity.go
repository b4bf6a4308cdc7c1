package middleware

// identity.go defines helpers for reading the authenticated identity
// that Authenticate attached to the Echo context.

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/neuronet/neuronet-backend/internal/model"
)

// CurrentUser returns the authenticated user stored in context, if any.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(identityKey).(model.User)
	return u, ok
}

// currentUserID returns a string form of the authenticated user's ID
// for rate-limit key building, or "anon" when the request carries no
// identity (e.g. login attempts).
func currentUserID(c echo.Context) string {
	if u, ok := CurrentUser(c); ok {
		return strconv.FormatUint(u.ID, 10)
	}
	return "anon"
}
