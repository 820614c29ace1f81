package repositories

import (
	"errors"

	"makhana/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCatalogReadOnly = errors.New("catalog is read-only")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
