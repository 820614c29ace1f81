// Package database opens the GORM connection for the configured driver and
// owns schema migration and catalog seeding.
package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"makhana/internal/models"
	"makhana/internal/repositories"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the database.
func Open(driver, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logger, gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	logger.Info("database connected", zap.String("driver", driver))
	return db, nil
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.Order{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedCatalog inserts every product whose ID is not yet stored and returns
// the number inserted.
func SeedCatalog(repo repositories.ProductRepository, products []models.Product) (int, error) {
	inserted := 0
	for i := range products {
		_, err := repo.GetByID(products[i].ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrProductNotFound) {
			return inserted, err
		}
		p := products[i]
		if err := repo.Create(&p); err != nil {
			return inserted, fmt.Errorf("seed %s: %w", p.ID, err)
		}
		inserted++
	}
	return inserted, nil
}
