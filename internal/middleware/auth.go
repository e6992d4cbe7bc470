package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"wheelmart/internal/tokens"
)

type BearerAuth struct {
	JWTSecret []byte
}

func NewBearerAuth(secret []byte) *BearerAuth {
	return &BearerAuth{JWTSecret: secret}
}

// RequireAuth gates a route on an `Authorization: Bearer <token>` header.
// It never touches the database, so a token outlives the account it was
// issued for until it expires.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
		}

		parts := strings.Split(header, "Bearer ")
		if len(parts) != 2 || parts[1] == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
		}

		claims, err := tokens.AccessClaimsFromToken(parts[1], m.JWTSecret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
		}

		setUserContext(c, claims)
		return next(c)
	}
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)
}
