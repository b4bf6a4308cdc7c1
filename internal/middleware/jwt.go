package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neuronet/neuronet-backend/internal/model"
	"github.com/neuronet/neuronet-backend/internal/utils"
)

// identityKey is the context key under which Authenticate stores the
// authenticated user for downstream handlers.
const identityKey = "identity"

// UserStore is the slice of the user repository the access guard
// needs: resolving a token subject to a live identity row.
type UserStore interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// Authenticate returns an Echo middleware that resolves a Bearer
// access token to an authenticated identity. The token signature and
// expiry are checked first; the subject is then looked up in the
// datastore so that deactivation takes effect on the next request even
// for tokens issued earlier.
//
// Failure modes:
//   - missing/malformed/expired token, or subject not found: 401 with a
//     WWW-Authenticate challenge. A deleted user and a forged token are
//     deliberately indistinguishable to avoid account enumeration.
//   - valid token but is_active=false: 403. The credential was fine,
//     the account is suspended.
//
// On success the full user record is attached to the request context;
// handlers read it via CurrentUser.
func Authenticate(secret string, users UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				if err == utils.ErrTokenExpired {
					return unauthorized(c, "token expired")
				}
				return unauthorized(c, "invalid token")
			}
			uid, err := claims.UserID()
			if err != nil {
				return unauthorized(c, "invalid token")
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := users.GetByID(ctx, uid)
			if err != nil {
				// not found or lookup failure: same generic 401
				return unauthorized(c, "invalid token")
			}
			if !u.IsActive {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "account is inactive"})
			}

			c.Set(identityKey, u)
			return next(c)
		}
	}
}

// unauthorized writes a 401 with the re-authentication challenge
// header required for bearer-token schemes.
func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": msg})
}
