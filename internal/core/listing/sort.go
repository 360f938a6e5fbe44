package listing

import (
	"strings"

	"github.com/aqarcrm/aqarcrm/internal/core/query"
)

type SortOption string

const (
	SortNewest      SortOption = "newest"
	SortOldest      SortOption = "oldest"
	SortPriceAsc    SortOption = "price_asc"
	SortPriceDesc   SortOption = "price_desc"
	SortSurfaceDesc SortOption = "surface_desc"
	SortTitleAsc    SortOption = "title_asc"
	SortTitleDesc   SortOption = "title_desc"
)

// Sort returns a stably sorted copy. Unknown options fall back to newest
// first.
func Sort(items []Property, opt SortOption) []Property {
	switch opt {
	case SortOldest:
		return query.SortStable(items, func(a, b Property) bool { return a.CreatedAt.Before(b.CreatedAt) })
	case SortPriceAsc:
		return query.SortStable(items, func(a, b Property) bool { return a.Price < b.Price })
	case SortPriceDesc:
		return query.SortStable(items, func(a, b Property) bool { return a.Price > b.Price })
	case SortSurfaceDesc:
		return query.SortStable(items, func(a, b Property) bool { return a.Surface > b.Surface })
	case SortTitleAsc:
		return query.SortStable(items, func(a, b Property) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		})
	case SortTitleDesc:
		return query.SortStable(items, func(a, b Property) bool {
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		})
	default:
		return query.SortStable(items, func(a, b Property) bool { return a.CreatedAt.After(b.CreatedAt) })
	}
}
