package matching

import (
	"errors"
	"testing"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

func TestMatchesForClient(t *testing.T) {
	store := storage.NewMemoryStore()
	clients := client.NewRepository(store)
	properties := listing.NewRepository(store)
	svc := NewService(clients, properties)

	properties.Upsert(listing.Property{
		ID:       "p1",
		Type:     listing.TypeApartment,
		Price:    8500,
		Location: "Casablanca, Anfa",
	})

	clients.Upsert(client.Client{
		ID:   "with-needs",
		Role: client.RoleTenant,
		Needs: &client.Needs{
			PropertyTypes: []listing.PropertyType{listing.TypeApartment},
			MaxPrice:      9000,
			Locations:     []string{"Casablanca"},
		},
	})
	clients.Upsert(client.Client{ID: "without-needs", Role: client.RoleOwner})

	matches, err := svc.MatchesForClient("with-needs")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].ID != "p1" {
		t.Fatalf("got %v", matches)
	}

	if _, err := svc.MatchesForClient("without-needs"); !errors.Is(err, ErrNoNeeds) {
		t.Fatalf("got %v, want ErrNoNeeds", err)
	}
	if _, err := svc.MatchesForClient("missing"); !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("got %v, want client.ErrNotFound", err)
	}
}
