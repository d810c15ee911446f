package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runProtected(t *testing.T, path, routePath, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET(routePath, h, JWTAuth(testSecret), RequireOwnUser())

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := runProtected(t, "/before/u-100", "/before/:user_id", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec := runProtected(t, "/before/u-100", "/before/:user_id", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireOwnUserMatch(t *testing.T) {
	rec := runProtected(t, "/before/u-100", "/before/:user_id", "Bearer "+signToken(t, "u-100"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOwnUserMismatch(t *testing.T) {
	rec := runProtected(t, "/before/u-200", "/before/:user_id", "Bearer "+signToken(t, "u-100"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPIKey(t *testing.T) {
	e := echo.New()
	e.POST("/refund", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, APIKey("server-key"))

	req := httptest.NewRequest(http.MethodPost, "/refund", nil)
	req.Header.Set("X-API-Key", "server-key")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/refund", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
