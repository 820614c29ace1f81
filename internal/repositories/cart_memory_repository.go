package repositories

import (
	"fmt"
	"sync"
	"time"

	"makhana/internal/models"

	"github.com/google/uuid"
)

// MemoryCartRepository is an in-memory implementation of CartRepository.
// Carts are copied in and out so callers never share item slices.
type MemoryCartRepository struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
	now   func() time.Time
}

// NewMemoryCartRepository creates a new instance of MemoryCartRepository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]models.Cart),
		now:   time.Now,
	}
}

// Create stores a new cart, assigning an ID if it has none.
func (r *MemoryCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if _, exists := r.carts[cart.ID]; exists {
		return fmt.Errorf("cart %s already exists", cart.ID)
	}
	now := r.now()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	r.carts[cart.ID] = copyCart(*cart)
	return nil
}

// GetByID returns a copy of the cart.
func (r *MemoryCartRepository) GetByID(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCartNotFound, id)
	}
	out := copyCart(cart)
	return &out, nil
}

// Save replaces the stored items of an existing cart and bumps UpdatedAt.
func (r *MemoryCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.carts[cart.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCartNotFound, cart.ID)
	}
	cart.CreatedAt = stored.CreatedAt
	cart.UpdatedAt = r.now()
	r.carts[cart.ID] = copyCart(*cart)
	return nil
}

// Delete removes a cart.
func (r *MemoryCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return fmt.Errorf("%w: %s", ErrCartNotFound, id)
	}
	delete(r.carts, id)
	return nil
}

// PurgeIdle drops carts whose last update is before cutoff.
func (r *MemoryCartRepository) PurgeIdle(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, cart := range r.carts {
		if cart.UpdatedAt.Before(cutoff) {
			delete(r.carts, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored carts.
func (r *MemoryCartRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}

func copyCart(c models.Cart) models.Cart {
	items := make([]models.CartItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
