package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"makhana/internal/cart"
	"makhana/internal/catalog"
	"makhana/internal/config"
	"makhana/internal/database"
	"makhana/internal/events"
	"makhana/internal/handlers"
	"makhana/internal/middleware"
	"makhana/internal/repositories"
	"makhana/internal/services"
	"makhana/pkg/rabbitmq"
	"makhana/pkg/sheets"
)

// App is the wired storefront service.
type App struct {
	Fiber  *fiber.App
	Carts  *services.CartService
	logger *zap.Logger
	db     *gorm.DB
	mq     *rabbitmq.Client
}

// NewApp connects the database and broker and registers every route.
func NewApp(cfg config.Config, logger *zap.Logger) (*App, error) {
	if cfg.SheetsURL == "" {
		return nil, errors.New("SHEETS_URL is required")
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}
	a := &App{logger: logger, db: db}
	if err := database.Migrate(db); err != nil {
		a.Close()
		return nil, err
	}

	// --- Events ---
	var publisher events.Publisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, logger)
		if err != nil {
			// events are best effort; the shop keeps working without them
			logger.Warn("RabbitMQ unavailable, events disabled", zap.Error(err))
		} else {
			a.mq = mq
			publisher = mq
		}
	}

	// --- Repositories ---
	productRepo, err := productRepository(cfg, db)
	if err != nil {
		a.Close()
		return nil, err
	}
	userRepo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	cartRepo := repositories.NewMemoryCartRepository()

	sheetClient, err := sheets.NewClient(sheets.Config{URL: cfg.SheetsURL, Timeout: cfg.SheetsTimeout}, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	// --- Services ---
	policy := cart.Policy{FreeShippingThreshold: cfg.FreeShippingThreshold, FlatFee: cfg.ShippingFlatFee}
	productService := services.NewProductService(productRepo)
	a.Carts = services.NewCartService(cartRepo, productRepo, policy, cfg.CartTTL, logger)
	checkoutService := services.NewCheckoutService(a.Carts, orderRepo, sheetClient, publisher, logger)
	formService := services.NewFormService(sheetClient, publisher, logger)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, sheetClient, publisher, logger)

	// --- Fiber ---
	a.Fiber = fiber.New(fiber.Config{
		AppName:      "makhana",
		ErrorHandler: handlers.ErrorHandler(logger),
	})
	a.Fiber.Use(recover.New())
	a.Fiber.Use(fiberlogger.New())

	a.Fiber.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"catalog": cfg.CatalogSource,
			"events":  a.mq != nil,
		})
	})

	authRequired := middleware.AuthRequired(authService, logger)
	optionalAuth := middleware.OptionalAuth(authService, logger)
	adminOnly := middleware.AdminOnly(cfg.AdminEmails, logger)

	apiV1 := a.Fiber.Group("/api/v1")
	handlers.NewAuthHandler(authService, logger).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService, logger).RegisterRoutes(apiV1, authRequired, adminOnly)
	handlers.NewCartHandler(a.Carts, logger).RegisterRoutes(apiV1)
	handlers.NewCheckoutHandler(checkoutService, logger).RegisterRoutes(apiV1, optionalAuth, authRequired)
	handlers.NewFormHandler(formService, logger).RegisterRoutes(apiV1)

	return a, nil
}

// productRepository picks the catalog backend named by CATALOG_SOURCE.
func productRepository(cfg config.Config, db *gorm.DB) (repositories.ProductRepository, error) {
	if cfg.CatalogSource == "database" {
		return repositories.NewGORMProductRepository(db), nil
	}
	return repositories.NewStaticProductRepository(catalog.Products())
}

// StartConsumers attaches the admin notifier to the event queue. It is a
// no-op when RabbitMQ is not configured.
func (a *App) StartConsumers() error {
	if a.mq == nil {
		return nil
	}
	return a.mq.ConsumeEvents(events.NewNotifier(a.logger).Handle)
}

// Close releases the broker and database connections.
func (a *App) Close() error {
	var errs []error
	if a.mq != nil {
		errs = append(errs, a.mq.Close())
	}
	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, sqlDB.Close())
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close app: %w", err)
	}
	return nil
}
