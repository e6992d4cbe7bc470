package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"wheelmart/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func doProtected(t *testing.T, header string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	mw := NewBearerAuth(testSecret)
	handler := mw.RequireAuth(func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/user/details", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler(c)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	_, err := doProtected(t, "")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "No token, authorization denied", he.Message)
}

func TestRequireAuthBareToken(t *testing.T) {
	token, err := tokens.SignAccessToken(uuid.New(), "a@b.c", "u", 0, time.Now().Add(time.Hour), testSecret)
	require.NoError(t, err)

	_, err = doProtected(t, token)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Token is not valid", he.Message)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	_, err := doProtected(t, "Bearer garbage")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Token is not valid", he.Message)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	token, err := tokens.SignAccessToken(uuid.New(), "a@b.c", "u", 0, time.Now().Add(-time.Minute), testSecret)
	require.NoError(t, err)

	_, err = doProtected(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Token is not valid", he.Message)
}

func TestRequireAuthValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := tokens.SignAccessToken(userID, "a@b.c", "u", 0, time.Now().Add(time.Hour), testSecret)
	require.NoError(t, err)

	rec, err := doProtected(t, "Bearer "+token)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), userID.String())
}
