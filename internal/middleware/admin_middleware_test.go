package middleware_test

import (
	"net/http"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"makhana/internal/middleware"
)

func TestAdminOnly(t *testing.T) {
	v := stubValidator{
		"admin":    {"user_id": "user-1", "email": "Ops@Example.com"},
		"customer": {"user_id": "user-2", "email": "asha@example.com"},
		"no-email": {"user_id": "user-3"},
	}
	logger := zap.NewNop()
	app := fiber.New()
	app.Get("/",
		middleware.AuthRequired(v, logger),
		middleware.AdminOnly([]string{"ops@example.com"}, logger),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	code, body := do(t, app, "Bearer admin")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	code, _ = do(t, app, "Bearer customer")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, app, "Bearer no-email")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminOnly_EmptyListRejectsEveryone(t *testing.T) {
	v := stubValidator{"admin": jwt.MapClaims{"user_id": "user-1", "email": "ops@example.com"}}
	logger := zap.NewNop()
	app := fiber.New()
	app.Get("/", middleware.AuthRequired(v, logger), middleware.AdminOnly(nil, logger),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	code, _ := do(t, app, "Bearer admin")
	assert.Equal(t, http.StatusForbidden, code)
}
