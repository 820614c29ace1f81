package repositories

import (
	"errors"
	"time"

	"makhana/internal/models"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository stores session carts.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	Save(cart *models.Cart) error
	Delete(id string) error
	// PurgeIdle removes carts not updated since cutoff and returns how many went.
	PurgeIdle(cutoff time.Time) int
}
