package client

import (
	"strings"

	"github.com/aqarcrm/aqarcrm/internal/core/query"
)

type SortOption string

const (
	SortNewest            SortOption = "newest"
	SortOldest            SortOption = "oldest"
	SortNameAsc           SortOption = "name_asc"
	SortNameDesc          SortOption = "name_desc"
	SortRole              SortOption = "role"
	SortStatus            SortOption = "status"
	SortRecentInteraction SortOption = "recent_interaction"
)

// Sort returns a stably sorted copy. recent_interaction orders by the latest
// interaction date, most recent first; clients without interactions sort last.
func Sort(items []Client, opt SortOption) []Client {
	switch opt {
	case SortOldest:
		return query.SortStable(items, func(a, b Client) bool { return a.CreatedAt.Before(b.CreatedAt) })
	case SortNameAsc:
		return query.SortStable(items, func(a, b Client) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	case SortNameDesc:
		return query.SortStable(items, func(a, b Client) bool {
			return strings.ToLower(a.Name) > strings.ToLower(b.Name)
		})
	case SortRole:
		return query.SortStable(items, func(a, b Client) bool { return a.Role < b.Role })
	case SortStatus:
		return query.SortStable(items, func(a, b Client) bool { return a.Status < b.Status })
	case SortRecentInteraction:
		return query.SortStable(items, func(a, b Client) bool {
			return a.LatestInteraction().After(b.LatestInteraction())
		})
	default:
		return query.SortStable(items, func(a, b Client) bool { return a.CreatedAt.After(b.CreatedAt) })
	}
}
