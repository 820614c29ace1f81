package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"makhana/internal/models"
	"makhana/internal/services"
)

// CartHandler handles HTTP requests for session carts.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: NewValidator(),
		logger:   logger,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Post("/", h.HandleCreateCart)
	cartRoutes.Get("/:id", h.HandleGetCart)
	cartRoutes.Delete("/:id", h.HandleClearCart)
	cartRoutes.Post("/:id/items", h.HandleAddItem)
	cartRoutes.Patch("/:id/items/:productId", h.HandleUpdateItem)
	cartRoutes.Delete("/:id/items/:productId", h.HandleRemoveItem)
}

// HandleCreateCart opens an empty cart.
func (h *CartHandler) HandleCreateCart(c *fiber.Ctx) error {
	details, err := h.service.CreateCart()
	if err != nil {
		return errorResponse(c, h.logger, "Could not create cart", err)
	}
	return c.Status(fiber.StatusCreated).JSON(details)
}

// HandleGetCart returns a cart with its totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	details, err := h.service.GetCart(c.Params("id"))
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve cart", err)
	}
	return c.JSON(details)
}

// HandleClearCart removes every line from the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	details, err := h.service.ClearCart(c.Params("id"))
	if err != nil {
		return errorResponse(c, h.logger, "Could not clear cart", err)
	}
	return c.JSON(details)
}

// HandleAddItem adds a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req models.AddCartItemRequest
	if body := parseBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	details, err := h.service.AddItem(c.Params("id"), req.ProductID, req.Quantity)
	if err != nil {
		return errorResponse(c, h.logger, "Could not add item to cart", err)
	}
	return c.JSON(details)
}

// HandleUpdateItem sets a line's quantity. Zero removes the line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req models.UpdateCartItemRequest
	if body := parseBody(c, h.validate, &req); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	details, err := h.service.UpdateItemQuantity(c.Params("id"), c.Params("productId"), req.Quantity)
	if err != nil {
		return errorResponse(c, h.logger, "Could not update cart item", err)
	}
	return c.JSON(details)
}

// HandleRemoveItem drops a line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	details, err := h.service.RemoveItem(c.Params("id"), c.Params("productId"))
	if err != nil {
		return errorResponse(c, h.logger, "Could not remove cart item", err)
	}
	return c.JSON(details)
}
