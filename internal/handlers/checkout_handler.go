package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"makhana/internal/models"
	"makhana/internal/services"
)

// CheckoutHandler handles order placement and order history.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: NewValidator(),
		logger:   logger,
	}
}

// RegisterRoutes registers checkout and order routes. Guests may check out;
// order history needs a logged-in user.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router, optionalAuth, authRequired fiber.Handler) {
	router.Post("/checkout", optionalAuth, h.HandleCheckout)

	orderRoutes := router.Group("/orders", authRequired)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleCheckout places an order for the contents of a cart.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	var req models.CheckoutRequest
	if body := parseBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	order, err := h.service.PlaceOrder(c.UserContext(), req, userID(c))
	if err != nil {
		return errorResponse(c, h.logger, "Could not place order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// HandleGetOrders lists the caller's orders.
func (h *CheckoutHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersForUser(userID(c))
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves one of the caller's orders.
func (h *CheckoutHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderForUser(userID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve order", err)
	}
	return c.JSON(order)
}
