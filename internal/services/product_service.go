package services

import (
	"makhana/internal/catalog"
	"makhana/internal/models"
	"makhana/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns one page of the catalog narrowed and ordered by c.
func (s *ProductService) ListProducts(c catalog.Criteria) (catalog.Page, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return catalog.Page{}, err
	}
	return catalog.Query(all, c), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductBySlug retrieves a single product by its URL slug.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetBySlug(slug)
}

func (s *ProductService) Featured() ([]models.Product, error) {
	return s.highlight(catalog.Featured)
}

func (s *ProductService) BestSellers() ([]models.Product, error) {
	return s.highlight(catalog.BestSellers)
}

func (s *ProductService) NewArrivals() ([]models.Product, error) {
	return s.highlight(catalog.NewArrivals)
}

func (s *ProductService) highlight(pick func([]models.Product) []models.Product) ([]models.Product, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return pick(all), nil
}

// Categories lists the catalog's categories with product counts.
func (s *ProductService) Categories() ([]catalog.Category, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return catalog.Categories(all), nil
}

// CreateProduct stores a new product, deriving the slug from the name when
// none is given.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Slug == "" {
		product.Slug = catalog.Slugify(product.Name)
	}
	return s.repo.Create(product)
}

// UpdateProduct replaces an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Slug == "" {
		product.Slug = catalog.Slugify(product.Name)
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
