package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makhana/internal/cart"
	"makhana/internal/models"
)

func TestTotals(t *testing.T) {
	policy := cart.DefaultPolicy()

	tests := []struct {
		name     string
		items    []models.CartItem
		subtotal float64
		shipping float64
		count    int
	}{
		{name: "empty cart pays flat fee", items: nil, subtotal: 0, shipping: 50, count: 0},
		{
			name:     "below threshold",
			items:    []models.CartItem{{ProductID: "a", Quantity: 1, Price: 299}},
			subtotal: 299, shipping: 50, count: 1,
		},
		{
			name: "exactly at threshold ships free",
			items: []models.CartItem{
				{ProductID: "a", Quantity: 2, Price: 150},
				{ProductID: "b", Quantity: 1, Price: 200},
			},
			subtotal: 500, shipping: 0, count: 3,
		},
		{
			name: "above threshold",
			items: []models.CartItem{
				{ProductID: "a", Quantity: 3, Price: 329},
				{ProductID: "b", Quantity: 1, Price: 449},
			},
			subtotal: 1436, shipping: 0, count: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := cart.Totals(tc.items, policy)
			assert.Equal(t, tc.subtotal, s.Subtotal)
			assert.Equal(t, tc.shipping, s.Shipping)
			assert.Equal(t, tc.subtotal+tc.shipping, s.Total)
			assert.Equal(t, tc.count, s.ItemCount)
			assert.Equal(t, tc.shipping == 0, s.FreeShipping)
		})
	}
}

func TestTotals_AmountToFreeShipping(t *testing.T) {
	s := cart.Totals([]models.CartItem{{ProductID: "a", Quantity: 1, Price: 319}}, cart.DefaultPolicy())
	assert.Equal(t, 181.0, s.AmountToFreeShipping)

	s = cart.Totals([]models.CartItem{{ProductID: "a", Quantity: 1, Price: 100}}, cart.Policy{FreeShippingThreshold: 100, FlatFee: 40})
	assert.Zero(t, s.AmountToFreeShipping)
	assert.Zero(t, s.Shipping)

	s = cart.Totals([]models.CartItem{{ProductID: "a", Quantity: 1, Price: 99.99}}, cart.Policy{FreeShippingThreshold: 100, FlatFee: 40})
	assert.Equal(t, 40.0, s.Shipping)
	assert.Equal(t, 139.99, s.Total)
}

func TestAdd_AggregatesByProduct(t *testing.T) {
	items, err := cart.Add(nil, models.CartItem{ProductID: "a", Name: "A", Quantity: 1, Price: 100})
	require.NoError(t, err)
	items, err = cart.Add(items, models.CartItem{ProductID: "b", Name: "B", Quantity: 2, Price: 50})
	require.NoError(t, err)
	updated, err := cart.Add(items, models.CartItem{ProductID: "a", Name: "A", Quantity: 3, Price: 90})
	require.NoError(t, err)

	require.Len(t, updated, 2)
	assert.Equal(t, 4, updated[0].Quantity)
	assert.Equal(t, 90.0, updated[0].Price)
	// the previous slice is not mutated
	assert.Equal(t, 1, items[0].Quantity)

	_, err = cart.Add(items, models.CartItem{ProductID: "c", Quantity: 0, Price: 1})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
}

func TestSetQuantityAndRemove(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "a", Quantity: 1, Price: 100},
		{ProductID: "b", Quantity: 2, Price: 50},
	}

	out, err := cart.SetQuantity(items, "b", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out[1].Quantity)
	assert.Equal(t, 2, items[1].Quantity)

	out, err = cart.SetQuantity(items, "a", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ProductID)

	_, err = cart.SetQuantity(items, "a", -1)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	_, err = cart.SetQuantity(items, "zzz", 2)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)

	out, err = cart.Remove(items, "a")
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = cart.Remove(items, "zzz")
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestAdd_CapsLineQuantity(t *testing.T) {
	items, err := cart.Add(nil, models.CartItem{ProductID: "a", Quantity: 60, Price: 10})
	require.NoError(t, err)
	items, err = cart.Add(items, models.CartItem{ProductID: "a", Quantity: 39, Price: 10})
	require.NoError(t, err)
	assert.Equal(t, cart.MaxQuantity, items[0].Quantity)

	_, err = cart.Add(items, models.CartItem{ProductID: "a", Quantity: 1, Price: 10})
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)
	assert.Equal(t, cart.MaxQuantity, items[0].Quantity)

	_, err = cart.Add(nil, models.CartItem{ProductID: "b", Quantity: 100, Price: 10})
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)

	_, err = cart.SetQuantity(items, "a", 100)
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)
}

func TestDeduct(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "a", Quantity: 3, Price: 100},
		{ProductID: "b", Quantity: 2, Price: 50},
		{ProductID: "c", Quantity: 1, Price: 20},
	}
	ordered := []models.CartItem{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 2},
	}

	out := cart.Deduct(items, ordered)
	assert.Equal(t, []models.CartItem{
		{ProductID: "a", Quantity: 2, Price: 100},
		{ProductID: "c", Quantity: 1, Price: 20},
	}, out)
	assert.Equal(t, 3, items[0].Quantity)

	assert.Empty(t, cart.Deduct(ordered, ordered))
}
