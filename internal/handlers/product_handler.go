package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"makhana/internal/catalog"
	"makhana/internal/models"
	"makhana/internal/services"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: NewValidator(),
		logger:   logger,
	}
}

// RegisterRoutes registers the product and catalog routes. Mutations go
// through auth and then admin.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/featured", h.HandleFeatured)
	productRoutes.Get("/bestsellers", h.HandleBestSellers)
	productRoutes.Get("/new-arrivals", h.HandleNewArrivals)
	productRoutes.Get("/slug/:slug", h.HandleGetProductBySlug)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", auth, admin, h.HandleCreateProduct)
	productRoutes.Put("/:id", auth, admin, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", auth, admin, h.HandleDeleteProduct)

	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/categories", h.HandleCategories)
	catalogRoutes.Get("/price-ranges", h.HandlePriceRanges)
}

type listQuery struct {
	Category   string  `query:"category"`
	Search     string  `query:"search" validate:"max=100"`
	Tags       string  `query:"tags"`
	MinPrice   float64 `query:"min_price" validate:"gte=0"`
	MaxPrice   float64 `query:"max_price" validate:"gte=0"`
	PriceRange string  `query:"price_range"`
	InStock    bool    `query:"in_stock"`
	Sort       string  `query:"sort"`
	Limit      int     `query:"limit" validate:"gte=0"`
	Offset     int     `query:"offset" validate:"gte=0"`
}

func (q listQuery) criteria() (catalog.Criteria, error) {
	c := catalog.Criteria{
		Category: q.Category,
		Search:   q.Search,
		InStock:  q.InStock,
		Sort:     catalog.ParseSortOption(q.Sort),
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	for _, tag := range strings.Split(q.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			c.Tags = append(c.Tags, tag)
		}
	}

	switch {
	case q.PriceRange != "" && q.PriceRange != "all":
		r, err := catalog.ParsePriceRange(q.PriceRange)
		if err != nil {
			return c, err
		}
		c.PriceRange = &r
	case q.MinPrice > 0 || q.MaxPrice > 0:
		c.PriceRange = &catalog.PriceRange{Min: q.MinPrice, Max: q.MaxPrice}
	}
	return c, nil
}

// HandleListProducts returns a filtered, sorted page of products.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var q listQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationBody(err))
	}
	criteria, err := q.criteria()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid price range",
			"error":   err.Error(),
		})
	}

	page, err := h.service.ListProducts(criteria)
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve products", err)
	}
	return c.JSON(page)
}

func (h *ProductHandler) HandleFeatured(c *fiber.Ctx) error {
	return h.list(c, h.service.Featured)
}

func (h *ProductHandler) HandleBestSellers(c *fiber.Ctx) error {
	return h.list(c, h.service.BestSellers)
}

func (h *ProductHandler) HandleNewArrivals(c *fiber.Ctx) error {
	return h.list(c, h.service.NewArrivals)
}

func (h *ProductHandler) list(c *fiber.Ctx, fetch func() ([]models.Product, error)) error {
	products, err := fetch()
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleGetProductBySlug retrieves a single product by its slug.
func (h *ProductHandler) HandleGetProductBySlug(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct adds a product to a database-backed catalog.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if body := parseBody(c, h.validate, &product); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return errorResponse(c, h.logger, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces the product named in the path.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if body := parseBody(c, h.validate, &product); body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	product.ID = c.Params("id")
	if err := h.service.UpdateProduct(&product); err != nil {
		return errorResponse(c, h.logger, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(id); err != nil {
		return errorResponse(c, h.logger, "Could not delete product", err)
	}
	return c.JSON(fiber.Map{
		"message": "Product " + id + " deleted",
	})
}

// HandleCategories lists categories with product counts.
func (h *ProductHandler) HandleCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return errorResponse(c, h.logger, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandlePriceRanges lists the fixed price filter buckets.
func (h *ProductHandler) HandlePriceRanges(c *fiber.Ctx) error {
	return c.JSON(catalog.PriceRanges())
}
