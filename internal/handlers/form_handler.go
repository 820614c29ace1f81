package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"makhana/internal/models"
	"makhana/internal/services"
	"makhana/pkg/sheets"
)

// FormHandler handles the storefront's public forms.
type FormHandler struct {
	service  *services.FormService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(service *services.FormService, logger *zap.Logger) *FormHandler {
	return &FormHandler{
		service:  service,
		validate: NewValidator(),
		logger:   logger,
	}
}

// RegisterRoutes registers the form routes with the Fiber app.
func (h *FormHandler) RegisterRoutes(router fiber.Router) {
	formRoutes := router.Group("/forms")
	formRoutes.Post("/contact", h.HandleContact)
	formRoutes.Post("/newsletter", h.HandleNewsletter)
	formRoutes.Post("/bulk-order", h.HandleBulkOrder)
}

func (h *FormHandler) HandleContact(c *fiber.Ctx) error {
	var msg models.ContactSubmission
	return handleForm(c, h, &msg, "Thank you for your message! We'll get back to you soon.",
		func(ctx context.Context) (*sheets.Result, error) { return h.service.SubmitContact(ctx, msg) })
}

func (h *FormHandler) HandleNewsletter(c *fiber.Ctx) error {
	var sub models.NewsletterSubscription
	return handleForm(c, h, &sub, "Successfully subscribed to our newsletter!",
		func(ctx context.Context) (*sheets.Result, error) { return h.service.Subscribe(ctx, sub) })
}

func (h *FormHandler) HandleBulkOrder(c *fiber.Ctx) error {
	var inquiry models.BulkOrderInquiry
	return handleForm(c, h, &inquiry, "Thank you for your inquiry! Our team will contact you within 24 hours.",
		func(ctx context.Context) (*sheets.Result, error) { return h.service.SubmitBulkOrder(ctx, inquiry) })
}

// handleForm parses and validates dst, then runs submit, which reads the
// parsed value through its closure.
func handleForm(c *fiber.Ctx, h *FormHandler, dst any, message string, submit func(context.Context) (*sheets.Result, error)) error {
	if body := parseBody(c, h.validate, dst); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	res, err := submit(c.UserContext())
	if err != nil {
		return errorResponse(c, h.logger, "Submission failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"status":  res.Status,
	})
}
