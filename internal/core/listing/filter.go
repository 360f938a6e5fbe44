package listing

import (
	"github.com/aqarcrm/aqarcrm/internal/core/query"
)

// Filter narrows the property list. Unset criteria match everything; all set
// criteria must hold (logical AND). Output order follows input order — the
// sort step owns ordering.
type Filter struct {
	Search          string          `form:"search"`
	Type            PropertyType    `form:"type"`
	Status          Status          `form:"status"`
	TransactionType TransactionType `form:"transaction_type"`
	Condition       Condition       `form:"condition"`
	MinPrice        float64         `form:"min_price"`
	MaxPrice        float64         `form:"max_price"`
	MinSurface      float64         `form:"min_surface"`
	MaxSurface      float64         `form:"max_surface"`
	MinRooms        int             `form:"min_rooms"`
	MaxRooms        int             `form:"max_rooms"`
	Feature         string          `form:"feature"`
}

func (f Filter) Match(p Property) bool {
	if !query.TextMatches(f.Search, p.Title, p.Description, p.Location, p.Code) {
		return false
	}
	if !query.Equals(string(f.Type), string(p.Type)) {
		return false
	}
	if !query.Equals(string(f.Status), string(p.Status)) {
		return false
	}
	if !query.Equals(string(f.TransactionType), string(p.TransactionType)) {
		return false
	}
	if !query.Equals(string(f.Condition), string(p.Condition)) {
		return false
	}
	if !query.InRange(p.Price, f.MinPrice, f.MaxPrice) {
		return false
	}
	if !query.InRange(p.Surface, f.MinSurface, f.MaxSurface) {
		return false
	}
	if !query.InRange(float64(p.Rooms), float64(f.MinRooms), float64(f.MaxRooms)) {
		return false
	}
	if !query.SetContains(p.Features, f.Feature) {
		return false
	}
	return true
}

func (f Filter) Apply(items []Property) []Property {
	out := make([]Property, 0, len(items))
	for _, p := range items {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
