package catalog

import (
	"fmt"

	"makhana/internal/models"
)

// Category is a browsable grouping with the number of products in it.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories lists "all", then every top-level category, then every
// sub-category, each in order of first appearance.
func Categories(products []models.Product) []Category {
	out := []Category{{ID: "all", Name: "All Products", Count: len(products)}}
	index := map[string]int{"all": 0}

	add := func(name string) {
		if name == "" {
			return
		}
		id := Slugify(name)
		if i, ok := index[id]; ok {
			out[i].Count++
			return
		}
		index[id] = len(out)
		out = append(out, Category{ID: id, Name: name, Count: 1})
	}

	for _, p := range products {
		add(p.Category)
	}
	for _, p := range products {
		if p.SubCategory != "" && Slugify(p.SubCategory) != Slugify(p.Category) {
			add(p.SubCategory)
		}
	}
	return out
}

// PriceRange is an inclusive price window. Max of zero means unbounded.
type PriceRange struct {
	ID   string  `json:"id,omitempty"`
	Name string  `json:"name,omitempty"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max,omitempty"`
}

// Contains reports whether price lies within [Min, Max].
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	return r.Max <= 0 || price <= r.Max
}

var priceRanges = []PriceRange{
	{ID: "0-300", Name: "Under ₹300", Min: 0, Max: 300},
	{ID: "300-400", Name: "₹300 - ₹400", Min: 300, Max: 400},
	{ID: "400-500", Name: "₹400 - ₹500", Min: 400, Max: 500},
	{ID: "500+", Name: "Above ₹500", Min: 500},
}

// PriceRanges returns the fixed price buckets shown in the shop filters.
func PriceRanges() []PriceRange {
	out := make([]PriceRange, len(priceRanges))
	copy(out, priceRanges)
	return out
}

// ParsePriceRange looks up a bucket by id.
func ParsePriceRange(id string) (PriceRange, error) {
	for _, r := range priceRanges {
		if r.ID == id {
			return r, nil
		}
	}
	return PriceRange{}, fmt.Errorf("unknown price range %q", id)
}
