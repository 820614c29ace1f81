// Package catalog holds the built-in product list and the pure functions used
// to browse it: filtering, sorting, pagination and category summaries.
package catalog

import (
	"sort"
	"strings"

	"makhana/internal/models"
)

// SortOption names an ordering of a product listing.
type SortOption string

const (
	SortPopularity SortOption = "popularity"
	SortPriceLow   SortOption = "price-low"
	SortPriceHigh  SortOption = "price-high"
	SortRating     SortOption = "rating"
	SortNewest     SortOption = "newest"
)

const (
	DefaultPageSize = 8
	MaxPageSize     = 50
)

// Criteria narrows and orders a product listing. Zero values mean "no filter".
type Criteria struct {
	Category   string
	Search     string
	Tags       []string
	PriceRange *PriceRange
	InStock    bool
	Sort       SortOption
	Limit      int
	Offset     int
}

// Page is one window of a filtered, sorted listing.
type Page struct {
	Items   []models.Product `json:"items"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	HasMore bool             `json:"hasMore"`
}

// MatchesCategory reports whether the product's category or sub-category
// matches. Names are compared in slug form, so "trail-mix" matches "Trail Mix".
func MatchesCategory(p models.Product, category string) bool {
	want := Slugify(category)
	if want == "" || want == "all" {
		return true
	}
	if Slugify(p.Category) == want {
		return true
	}
	return p.SubCategory != "" && Slugify(p.SubCategory) == want
}

// MatchesSearch does a case-insensitive substring match on name, description and tags.
func MatchesSearch(p models.Product, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesAnyTag(p models.Product, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}

// Filter returns the products satisfying every criterion, in input order.
// The input slice is not modified.
func Filter(products []models.Product, c Criteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !MatchesCategory(p, c.Category) {
			continue
		}
		if !MatchesSearch(p, c.Search) {
			continue
		}
		if c.PriceRange != nil && !c.PriceRange.Contains(p.Price) {
			continue
		}
		if !matchesAnyTag(p, c.Tags) {
			continue
		}
		if c.InStock && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ParseSortOption maps a query value to a SortOption. Unknown values fall back
// to popularity.
func ParseSortOption(s string) SortOption {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(s))); opt {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return opt
	default:
		return SortPopularity
	}
}

// Sort returns a sorted copy. Ties keep their input order.
func Sort(products []models.Product, opt SortOption) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	var less func(a, b models.Product) bool
	switch ParseSortOption(string(opt)) {
	case SortPriceLow:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b models.Product) bool { return a.Rating > b.Rating }
	case SortNewest:
		less = func(a, b models.Product) bool { return a.NewArrival && !b.NewArrival }
	default:
		less = func(a, b models.Product) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Query filters, sorts and paginates.
func Query(products []models.Product, c Criteria) Page {
	sorted := Sort(Filter(products, c), c.Sort)

	limit := c.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := c.Offset
	if offset < 0 {
		offset = 0
	}

	page := Page{Total: len(sorted), Limit: limit, Offset: offset, Items: []models.Product{}}
	if offset >= len(sorted) {
		return page
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	page.Items = sorted[offset:end]
	page.HasMore = end < len(sorted)
	return page
}

// Featured returns products flagged for the home page carousel.
func Featured(products []models.Product) []models.Product {
	return selectWhere(products, func(p models.Product) bool { return p.Featured })
}

// BestSellers returns products flagged as best sellers.
func BestSellers(products []models.Product) []models.Product {
	return selectWhere(products, func(p models.Product) bool { return p.BestSeller })
}

// NewArrivals returns products flagged as new.
func NewArrivals(products []models.Product) []models.Product {
	return selectWhere(products, func(p models.Product) bool { return p.NewArrival })
}

func selectWhere(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Slugify lower-cases s and collapses every run of non-alphanumerics to "-".
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
