package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"makhana/internal/middleware"
)

type stubValidator map[string]jwt.MapClaims

func (s stubValidator) ValidateToken(token string) (jwt.MapClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/", handler, func(c *fiber.Ctx) error {
		id, _ := c.Locals("user_id").(string)
		return c.SendString("user:" + id)
	})
	return app
}

func do(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthRequired(t *testing.T) {
	v := stubValidator{
		"good":    {"user_id": "user-123", "email": "a@b.co"},
		"no-user": {"email": "a@b.co"},
	}
	app := newTestApp(middleware.AuthRequired(v, zap.NewNop()))

	code, body := do(t, app, "Bearer good")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user:user-123", body)

	for _, header := range []string{"", "Token good", "Bearer bad", "Bearer no-user"} {
		code, _ = do(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, code, header)
	}
}

func TestOptionalAuth(t *testing.T) {
	v := stubValidator{"good": {"user_id": "user-123"}}
	app := newTestApp(middleware.OptionalAuth(v, zap.NewNop()))

	code, body := do(t, app, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user:", body)

	code, body = do(t, app, "Bearer good")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user:user-123", body)

	code, _ = do(t, app, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, code)
}
