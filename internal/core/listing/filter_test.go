package listing

import (
	"testing"
	"time"
)

func sampleProperties() []Property {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	return []Property{
		{
			ID:              "a",
			Code:            "PROP-001",
			Title:           "Bright apartment near the Corniche",
			Type:            TypeApartment,
			Status:          StatusAvailable,
			TransactionType: TransactionRent,
			Price:           8500,
			Surface:         85,
			Rooms:           3,
			Location:        "Casablanca, Ain Diab",
			Features:        []string{"parking", "elevator"},
			CreatedAt:       base,
		},
		{
			ID:              "b",
			Code:            "PROP-002",
			Title:           "Family villa in Anfa",
			Type:            TypeVilla,
			Status:          StatusAvailable,
			TransactionType: TransactionSale,
			Price:           1450000,
			Surface:         320,
			Rooms:           6,
			Location:        "Casablanca, Anfa",
			Features:        []string{"garden", "pool"},
			CreatedAt:       base.Add(24 * time.Hour),
		},
		{
			ID:              "c",
			Code:            "PROP-003",
			Title:           "Studio in Maarif",
			Type:            TypeStudio,
			Status:          StatusRented,
			TransactionType: TransactionRent,
			Price:           4200,
			Surface:         42,
			Rooms:           1,
			Location:        "Casablanca, Maarif",
			CreatedAt:       base.Add(48 * time.Hour),
		},
	}
}

func TestFilterApply(t *testing.T) {
	props := sampleProperties()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter matches all", Filter{}, []string{"a", "b", "c"}},
		{"by type", Filter{Type: TypeVilla}, []string{"b"}},
		{"by status", Filter{Status: StatusRented}, []string{"c"}},
		{"by transaction", Filter{TransactionType: TransactionRent}, []string{"a", "c"}},
		{"price range", Filter{MinPrice: 5000, MaxPrice: 10000}, []string{"a"}},
		{"zero bounds ignored", Filter{MinPrice: 0, MaxPrice: 0}, []string{"a", "b", "c"}},
		{"surface minimum", Filter{MinSurface: 100}, []string{"b"}},
		{"rooms range", Filter{MinRooms: 2, MaxRooms: 4}, []string{"a"}},
		{"text search on title", Filter{Search: "villa"}, []string{"b"}},
		{"text search on location", Filter{Search: "maarif"}, []string{"c"}},
		{"text search on code", Filter{Search: "prop-001"}, []string{"a"}},
		{"feature", Filter{Feature: "pool"}, []string{"b"}},
		{"combined criteria AND", Filter{Type: TypeApartment, MaxPrice: 9000, Search: "corniche"}, []string{"a"}},
		{"no match", Filter{Search: "marrakech"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(props)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, p := range got {
				if p.ID != tt.want[i] {
					t.Fatalf("result %d: got %s, want %s", i, p.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	props := sampleProperties()
	f := Filter{TransactionType: TransactionRent}

	once := f.Apply(props)
	twice := f.Apply(once)
	if len(once) != len(twice) {
		t.Fatalf("second application changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("second application reordered results")
		}
	}
}

func TestFilterNeverGrowsResult(t *testing.T) {
	props := sampleProperties()
	filters := []Filter{
		{},
		{Type: TypeApartment},
		{MinPrice: 1},
		{Search: "casablanca"},
	}
	for _, f := range filters {
		if got := f.Apply(props); len(got) > len(props) {
			t.Fatalf("filter produced %d results from %d inputs", len(got), len(props))
		}
	}
}
