package repositories

import (
	"fmt"

	"makhana/internal/models"
)

// StaticProductRepository serves a fixed, in-memory catalog loaded once at
// startup. All mutations fail with ErrCatalogReadOnly.
type StaticProductRepository struct {
	products []models.Product
	byID     map[string]int
	bySlug   map[string]int
}

// NewStaticProductRepository indexes products. Later duplicates of an id or
// slug are rejected.
func NewStaticProductRepository(products []models.Product) (*StaticProductRepository, error) {
	r := &StaticProductRepository{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no ID", p.Name)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product ID %s", p.ID)
		}
		if _, dup := r.bySlug[p.Slug]; dup && p.Slug != "" {
			return nil, fmt.Errorf("duplicate product slug %s", p.Slug)
		}
		r.byID[p.ID] = len(r.products)
		if p.Slug != "" {
			r.bySlug[p.Slug] = len(r.products)
		}
		r.products = append(r.products, p)
	}
	return r, nil
}

// GetAll returns all products in catalog order.
func (r *StaticProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *StaticProductRepository) GetByID(id string) (*models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrProductNotFound, id)
	}
	p := r.products[i]
	return &p, nil
}

// GetBySlug returns a product by its URL slug.
func (r *StaticProductRepository) GetBySlug(slug string) (*models.Product, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: slug %s", ErrProductNotFound, slug)
	}
	p := r.products[i]
	return &p, nil
}

func (r *StaticProductRepository) Create(*models.Product) error { return ErrCatalogReadOnly }

func (r *StaticProductRepository) Update(*models.Product) error { return ErrCatalogReadOnly }

func (r *StaticProductRepository) Delete(string) error { return ErrCatalogReadOnly }
