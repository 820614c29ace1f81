// Package cart implements the cart line arithmetic: quantity aggregation and
// totals with the free-shipping rule.
package cart

import (
	"errors"
	"fmt"
	"math"

	"makhana/internal/models"
)

// MaxQuantity caps the quantity of a single cart line.
const MaxQuantity = 99

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrQuantityLimit   = errors.New("quantity exceeds the per-line limit")
	ErrItemNotFound    = errors.New("item not in cart")
)

// Policy holds the shipping rule applied to a cart.
type Policy struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	FlatFee               float64 `json:"flatFee"`
}

// DefaultPolicy is free shipping from ₹500, otherwise ₹50.
func DefaultPolicy() Policy {
	return Policy{FreeShippingThreshold: 500, FlatFee: 50}
}

// Summary is the derived money view of a cart.
type Summary struct {
	ItemCount            int     `json:"itemCount"`
	Subtotal             float64 `json:"subtotal"`
	Shipping             float64 `json:"shipping"`
	Total                float64 `json:"total"`
	FreeShipping         bool    `json:"freeShipping"`
	AmountToFreeShipping float64 `json:"amountToFreeShipping"`
}

// Totals computes subtotal, shipping and total. Shipping is zero iff the
// subtotal reaches the threshold.
func Totals(items []models.CartItem, policy Policy) Summary {
	var s Summary
	for _, it := range items {
		s.ItemCount += it.Quantity
		s.Subtotal += it.Price * float64(it.Quantity)
	}
	s.Subtotal = roundCents(s.Subtotal)

	if s.Subtotal >= policy.FreeShippingThreshold {
		s.FreeShipping = true
	} else {
		s.Shipping = policy.FlatFee
		s.AmountToFreeShipping = roundCents(policy.FreeShippingThreshold - s.Subtotal)
	}
	s.Total = roundCents(s.Subtotal + s.Shipping)
	return s
}

// Add appends item or, when the product is already in the cart, increases its
// quantity and refreshes the name and price snapshot. The resulting line may
// not exceed MaxQuantity.
func Add(items []models.CartItem, item models.CartItem) ([]models.CartItem, error) {
	if item.Quantity <= 0 {
		return items, fmt.Errorf("%w: got %d", ErrInvalidQuantity, item.Quantity)
	}
	out := clone(items)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			if out[i].Quantity+item.Quantity > MaxQuantity {
				return items, fmt.Errorf("%w: %s would reach %d, max %d",
					ErrQuantityLimit, item.ProductID, out[i].Quantity+item.Quantity, MaxQuantity)
			}
			out[i].Quantity += item.Quantity
			out[i].Price = item.Price
			out[i].Name = item.Name
			return out, nil
		}
	}
	if item.Quantity > MaxQuantity {
		return items, fmt.Errorf("%w: got %d, max %d", ErrQuantityLimit, item.Quantity, MaxQuantity)
	}
	return append(out, item), nil
}

// SetQuantity replaces a line's quantity. Zero removes the line.
func SetQuantity(items []models.CartItem, productID string, quantity int) ([]models.CartItem, error) {
	if quantity < 0 {
		return items, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if quantity == 0 {
		return Remove(items, productID)
	}
	if quantity > MaxQuantity {
		return items, fmt.Errorf("%w: got %d, max %d", ErrQuantityLimit, quantity, MaxQuantity)
	}
	out := clone(items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			return out, nil
		}
	}
	return items, fmt.Errorf("%w: %s", ErrItemNotFound, productID)
}

// Remove drops the line for productID.
func Remove(items []models.CartItem, productID string) ([]models.CartItem, error) {
	out := make([]models.CartItem, 0, len(items))
	found := false
	for _, it := range items {
		if it.ProductID == productID {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return items, fmt.Errorf("%w: %s", ErrItemNotFound, productID)
	}
	return out, nil
}

// Deduct subtracts the ordered quantities from items. Lines that reach zero
// are dropped; quantities added after the order snapshot are kept.
func Deduct(items, ordered []models.CartItem) []models.CartItem {
	taken := make(map[string]int, len(ordered))
	for _, it := range ordered {
		taken[it.ProductID] += it.Quantity
	}
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		it.Quantity -= taken[it.ProductID]
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out
}

func clone(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items), len(items)+1)
	copy(out, items)
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
