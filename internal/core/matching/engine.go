// Package matching pairs a client's structured needs with the property
// inventory. All checks are AND'd; a property must pass every applicable one.
package matching

import (
	"strings"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
)

// Match returns the subset of inventory satisfying the needs, preserving
// inventory order. Callers sort or paginate downstream.
//
// An empty property-type set means no type constraint; an empty location set
// matches nothing. The asymmetry is long-standing observed behavior and is
// kept on purpose.
func Match(needs client.Needs, inventory []listing.Property) []listing.Property {
	var out []listing.Property
	for _, p := range inventory {
		if matchesOne(needs, p) {
			out = append(out, p)
		}
	}
	return out
}

func matchesOne(needs client.Needs, p listing.Property) bool {
	if len(needs.PropertyTypes) > 0 && !typeIn(p.Type, needs.PropertyTypes) {
		return false
	}
	if needs.MinPrice > 0 && p.Price < needs.MinPrice {
		return false
	}
	if needs.MaxPrice > 0 && p.Price > needs.MaxPrice {
		return false
	}
	if needs.MinSurface > 0 && p.Surface < needs.MinSurface {
		return false
	}
	if needs.MaxSurface > 0 && p.Surface > needs.MaxSurface {
		return false
	}
	if !locationMatches(needs.Locations, p.Location) {
		return false
	}
	if len(needs.Features) > 0 && !featureOverlap(needs.Features, p.Features) {
		return false
	}
	return true
}

func typeIn(t listing.PropertyType, set []listing.PropertyType) bool {
	for _, want := range set {
		if want == t {
			return true
		}
	}
	return false
}

// locationMatches requires at least one wanted location to fuzzily contain or
// be contained by the property's location, tolerating different granularity
// ("Casablanca" vs "Casablanca, Anfa"). An empty want list matches nothing.
func locationMatches(wanted []string, location string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	for _, w := range wanted {
		want := strings.ToLower(strings.TrimSpace(w))
		if want == "" {
			continue
		}
		if strings.Contains(loc, want) || strings.Contains(want, loc) {
			return true
		}
	}
	return false
}

// featureOverlap passes when at least one required feature is a
// case-insensitive substring of one of the property's features.
func featureOverlap(required, actual []string) bool {
	for _, req := range required {
		r := strings.ToLower(strings.TrimSpace(req))
		if r == "" {
			continue
		}
		for _, a := range actual {
			if strings.Contains(strings.ToLower(a), r) {
				return true
			}
		}
	}
	return false
}
