package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminOnly lets through callers whose token email is in emails. It must run
// after AuthRequired. An empty list rejects everyone.
func AdminOnly(emails []string, logger *zap.Logger) fiber.Handler {
	admins := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		admins[strings.ToLower(e)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if _, ok := admins[strings.ToLower(email)]; !ok || email == "" {
			logger.Info("admin route refused", zap.String("path", c.Path()), zap.String("email", email))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}
