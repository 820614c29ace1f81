package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"makhana/internal/cart"
	"makhana/internal/repositories"
	"makhana/internal/services"
	"makhana/pkg/sheets"
)

// NewValidator returns a validator that reports fields by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationBody turns a validator error into the 400 response body.
func validationBody(err error) fiber.Map {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fiber.Map{"message": "Validation failed", "error": err.Error()}
	}
	errorMessages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	}
}

// parseBody decodes the JSON body into dst and validates it. A non-nil
// result is the 400 response to send.
func parseBody(c *fiber.Ctx, v *validator.Validate, dst any) fiber.Map {
	if err := c.BodyParser(dst); err != nil {
		return fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		}
	}
	if err := v.Struct(dst); err != nil {
		return validationBody(err)
	}
	return nil
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrCartNotFound),
		errors.Is(err, repositories.ErrOrderNotFound),
		errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, cart.ErrItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrCatalogReadOnly):
		return fiber.StatusMethodNotAllowed
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrQuantityLimit),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, sheets.ErrInvalidPayload):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrCheckoutInProgress),
		errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrSubmissionFailed):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// errorResponse writes {message, error} with the status matching err.
// Unexpected errors are logged.
func errorResponse(c *fiber.Ctx, logger *zap.Logger, message string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		logger.Error(message,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// userID returns the authenticated user's ID, or "" for guests.
func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// ErrorHandler renders errors that escape a handler as JSON.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{
			"message": utils.StatusMessage(code),
			"error":   err.Error(),
		})
	}
}

