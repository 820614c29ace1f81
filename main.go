package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"makhana/internal/catalog"
	"makhana/internal/config"
	"makhana/internal/database"
	"makhana/internal/logging"
	"makhana/internal/repositories"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "makhana",
		Short:        "Makhana storefront API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}
	root.PersistentFlags().String("config", "", "path to a config file (overrides CONFIG_FILE)")
	_ = v.BindPFlag("CONFIG_FILE", root.PersistentFlags().Lookup("config"))

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context(), v)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the database schema and seed the built-in catalog",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(v)
			},
		},
		newCatalogCmd(v),
	)
	return root
}

func setup(v *viper.Viper) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, logger, err := setup(v)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("error during shutdown", zap.Error(err))
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.Carts.RunSweeper(ctx, cfg.CartSweepInterval)

	if err := app.StartConsumers(); err != nil {
		logger.Warn("failed to start event consumer", zap.Error(err))
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.AppPort))
		listenErr <- app.Fiber.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		logger.Error("server failed", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	if err := app.Fiber.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("error during fiber shutdown", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
	return nil
}

func runMigrate(v *viper.Viper) error {
	cfg, logger, err := setup(v)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	n, err := database.SeedCatalog(repositories.NewGORMProductRepository(db), catalog.Products())
	if err != nil {
		return err
	}
	logger.Info("migration complete", zap.Int("products_seeded", n))
	return nil
}

func newCatalogCmd(v *viper.Viper) *cobra.Command {
	var (
		criteria   catalog.Criteria
		sortBy     string
		priceRange string
		tags       []string
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print a filtered, sorted page of the catalog as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			criteria.Sort = catalog.ParseSortOption(sortBy)
			criteria.Tags = tags
			if priceRange != "" {
				r, err := catalog.ParsePriceRange(priceRange)
				if err != nil {
					return err
				}
				criteria.PriceRange = &r
			}

			products := catalog.Products()
			if cfg.CatalogSource == "database" {
				db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, zap.NewNop())
				if err != nil {
					return err
				}
				if sqlDB, err := db.DB(); err == nil {
					defer sqlDB.Close()
				}
				if products, err = repositories.NewGORMProductRepository(db).GetAll(); err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalog.Query(products, criteria))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&criteria.Category, "category", "", "category or sub-category name")
	flags.StringVar(&criteria.Search, "search", "", "substring of name, description or tag")
	flags.StringSliceVar(&tags, "tags", nil, "match any of these tags")
	flags.StringVar(&priceRange, "price-range", "", "price bucket id, e.g. 300-400")
	flags.BoolVar(&criteria.InStock, "in-stock", false, "only products in stock")
	flags.StringVar(&sortBy, "sort", string(catalog.SortPopularity), "popularity | price-low | price-high | rating | newest")
	flags.IntVar(&criteria.Limit, "limit", catalog.DefaultPageSize, "page size")
	flags.IntVar(&criteria.Offset, "offset", 0, "items to skip")
	return cmd
}
