// internal/domain/ad/filter.go
package ad

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortPriceLowHigh SortKey = "price_low_high"
	SortPriceHighLow SortKey = "price_high_low"
)

// Filter is the specification applied to an in-memory ad collection. Zero
// values mean "not applied"; price bounds are pointers so that zero is a
// usable bound.
type Filter struct {
	CategoryID  string
	Subcategory string
	LocationID  string
	PriceMin    *float64
	PriceMax    *float64
	SearchText  string
	SortKey     SortKey
}

// ApplyFilter computes the visible subset and order of ads for a filter.
// The input slice is never mutated; the result is always a fresh slice.
//
// Subcategory matching is exact including case; category names are only
// normalized during suggestion reconciliation, never here.
func ApplyFilter(ads []Ad, f Filter) []Ad {
	out := make([]Ad, 0, len(ads))

	search := strings.ToLower(strings.TrimSpace(f.SearchText))

	for _, a := range ads {
		if f.CategoryID != "" && a.CategoryID != f.CategoryID {
			continue
		}
		if f.Subcategory != "" && a.Subcategory.String != f.Subcategory {
			continue
		}
		if f.LocationID != "" && a.LocationID != f.LocationID {
			continue
		}
		if f.PriceMin != nil && a.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && a.Price > *f.PriceMax {
			continue
		}
		if search != "" {
			title := strings.ToLower(a.Title)
			desc := strings.ToLower(a.Description)
			if !strings.Contains(title, search) && !strings.Contains(desc, search) {
				continue
			}
		}
		out = append(out, a)
	}

	sortAds(out, f.SortKey)
	return out
}

// sortAds orders ads in place. Sorts are stable so price ties keep their
// relative input order.
func sortAds(ads []Ad, key SortKey) {
	switch key {
	case SortPriceLowHigh:
		sort.SliceStable(ads, func(i, j int) bool {
			return ads[i].Price < ads[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(ads, func(i, j int) bool {
			return ads[i].Price > ads[j].Price
		})
	default: // SortNewest
		sort.SliceStable(ads, func(i, j int) bool {
			return ads[i].PostedAt.After(ads[j].PostedAt)
		})
	}
}
