package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"makhana/internal/cart"
	"makhana/internal/models"
	"makhana/internal/repositories"
)

var (
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrCheckoutInProgress = errors.New("checkout already in progress for this cart")
)

// CartDetails is a cart together with its computed totals.
type CartDetails struct {
	models.Cart
	Summary cart.Summary `json:"summary"`
}

// CartService manages session carts. Prices and names are snapshotted from
// the catalog when a product is added.
type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
	policy   cart.Policy
	ttl      time.Duration
	logger   *zap.Logger

	// serializes read-modify-write cycles on carts and guards checkouts
	mu        sync.Mutex
	checkouts map[string]struct{}
	now       func() time.Time
}

// NewCartService creates a new CartService. Carts idle for longer than ttl
// are removed by PurgeIdle.
func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository, policy cart.Policy, ttl time.Duration, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		carts:     carts,
		products:  products,
		policy:    policy,
		ttl:       ttl,
		logger:    logger,
		checkouts: make(map[string]struct{}),
		now:       time.Now,
	}
}

// Policy returns the shipping rule applied to every cart.
func (s *CartService) Policy() cart.Policy {
	return s.policy
}

// CreateCart opens an empty cart.
func (s *CartService) CreateCart() (*CartDetails, error) {
	c := &models.Cart{}
	if err := s.carts.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return s.details(c), nil
}

// GetCart returns the cart with its totals.
func (s *CartService) GetCart(id string) (*CartDetails, error) {
	c, err := s.carts.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.details(c), nil
}

// AddItem puts quantity units of a product into the cart.
func (s *CartService) AddItem(cartID, productID string, quantity int) (*CartDetails, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
	}

	return s.mutate(cartID, func(items []models.CartItem) ([]models.CartItem, error) {
		return cart.Add(items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantity,
			Price:     product.Price,
		})
	})
}

// UpdateItemQuantity sets the quantity of a line; zero removes it.
func (s *CartService) UpdateItemQuantity(cartID, productID string, quantity int) (*CartDetails, error) {
	return s.mutate(cartID, func(items []models.CartItem) ([]models.CartItem, error) {
		return cart.SetQuantity(items, productID, quantity)
	})
}

// RemoveItem drops a line from the cart.
func (s *CartService) RemoveItem(cartID, productID string) (*CartDetails, error) {
	return s.mutate(cartID, func(items []models.CartItem) ([]models.CartItem, error) {
		return cart.Remove(items, productID)
	})
}

// ClearCart empties the cart but keeps its ID.
func (s *CartService) ClearCart(cartID string) (*CartDetails, error) {
	return s.mutate(cartID, func([]models.CartItem) ([]models.CartItem, error) {
		return nil, nil
	})
}

// BeginCheckout snapshots the cart and marks it as checking out until release
// is called. A second checkout of the same cart fails with
// ErrCheckoutInProgress in the meantime; other cart edits are still allowed.
func (s *CartService) BeginCheckout(cartID string) (details *CartDetails, release func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.checkouts[cartID]; busy {
		return nil, nil, fmt.Errorf("%w: %s", ErrCheckoutInProgress, cartID)
	}
	c, err := s.carts.GetByID(cartID)
	if err != nil {
		return nil, nil, err
	}
	s.checkouts[cartID] = struct{}{}

	var once sync.Once
	release = func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.checkouts, cartID)
			s.mu.Unlock()
		})
	}
	return s.details(c), release, nil
}

// SettleCheckout removes the ordered quantities from the cart. Anything added
// after the checkout snapshot stays in the cart.
func (s *CartService) SettleCheckout(cartID string, ordered []models.CartItem) (*CartDetails, error) {
	return s.mutate(cartID, func(items []models.CartItem) ([]models.CartItem, error) {
		return cart.Deduct(items, ordered), nil
	})
}

func (s *CartService) mutate(cartID string, fn func([]models.CartItem) ([]models.CartItem, error)) (*CartDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.carts.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	items, err := fn(c.Items)
	if err != nil {
		return nil, err
	}
	c.Items = items
	if err := s.carts.Save(c); err != nil {
		return nil, err
	}
	return s.details(c), nil
}

func (s *CartService) details(c *models.Cart) *CartDetails {
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return &CartDetails{Cart: *c, Summary: cart.Totals(c.Items, s.policy)}
}

// PurgeIdle removes carts that have not changed within the TTL.
func (s *CartService) PurgeIdle() int {
	return s.carts.PurgeIdle(s.now().Add(-s.ttl))
}

// RunSweeper calls PurgeIdle every interval until ctx is cancelled.
func (s *CartService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.PurgeIdle(); n > 0 {
				s.logger.Info("purged idle carts", zap.Int("count", n))
			}
		}
	}
}
