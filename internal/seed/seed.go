// Package seed loads a small demo dataset into an empty store so a fresh
// instance has something to show.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
	"github.com/aqarcrm/aqarcrm/internal/core/rental"
	"github.com/aqarcrm/aqarcrm/internal/logging"
)

type Repositories struct {
	Properties *listing.Repository
	Clients    *client.Repository
	Rentals    *rental.Repository
}

// Load populates demo data, but only into collections that are still empty.
// Re-running against a populated store is a no-op.
func Load(repos Repositories) {
	now := time.Now()

	owner := client.Client{
		ID:        uuid.NewString(),
		Name:      "Karim Bennani",
		Email:     "karim.bennani@example.com",
		Phone:     "+212612345678",
		Role:      client.RoleOwner,
		Status:    client.StatusActive,
		Tags:      []string{"vip"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	tenant := client.Client{
		ID:     uuid.NewString(),
		Name:   "Fatima El Amrani",
		Email:  "fatima.elamrani@example.com",
		Phone:  "+212661112233",
		Role:   client.RoleTenant,
		Status: client.StatusActive,
		Budget: 9000,
		Needs: &client.Needs{
			ID:            uuid.NewString(),
			PropertyTypes: []listing.PropertyType{listing.TypeApartment},
			MaxPrice:      9000,
			MinSurface:    70,
			Locations:     []string{"Casablanca"},
			Features:      []string{"parking"},
			Urgency:       client.UrgencyHigh,
			UpdatedAt:     now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	buyer := client.Client{
		ID:     uuid.NewString(),
		Name:   "Youssef Tazi",
		Phone:  "+212677889900",
		Role:   client.RoleBuyer,
		Status: client.StatusProspect,
		Budget: 1500000,
		Needs: &client.Needs{
			ID:            uuid.NewString(),
			PropertyTypes: []listing.PropertyType{listing.TypeVilla, listing.TypeHouse},
			MinSurface:    200,
			MaxPrice:      1600000,
			Locations:     []string{"Anfa", "Ain Diab"},
			Urgency:       client.UrgencyMedium,
			UpdatedAt:     now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	apartment := listing.Property{
		ID:              uuid.NewString(),
		Code:            "PROP-DEMO-001",
		Title:           "Bright apartment near the Corniche",
		Description:     "Two bedrooms, renovated kitchen, sea view from the balcony.",
		Type:            listing.TypeApartment,
		Condition:       listing.ConditionExcellent,
		TransactionType: listing.TransactionRent,
		Status:          listing.StatusRented,
		Surface:         85,
		Price:           8500,
		Rooms:           3,
		Location:        "Casablanca, Ain Diab",
		Features:        []string{"parking", "elevator", "balcony"},
		OwnerID:         owner.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	villa := listing.Property{
		ID:              uuid.NewString(),
		Code:            "PROP-DEMO-002",
		Title:           "Family villa with garden in Anfa",
		Type:            listing.TypeVilla,
		Condition:       listing.ConditionGood,
		TransactionType: listing.TransactionSale,
		Status:          listing.StatusAvailable,
		Surface:         320,
		Price:           1450000,
		Rooms:           6,
		Location:        "Casablanca, Anfa",
		Features:        []string{"garden", "garage", "pool"},
		OwnerID:         owner.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	studio := listing.Property{
		ID:              uuid.NewString(),
		Code:            "PROP-DEMO-003",
		Title:           "Studio in Maarif",
		Type:            listing.TypeStudio,
		Condition:       listing.ConditionNew,
		TransactionType: listing.TransactionRent,
		Status:          listing.StatusAvailable,
		Surface:         42,
		Price:           4200,
		Rooms:           1,
		Location:        "Casablanca, Maarif",
		Features:        []string{"elevator"},
		OwnerID:         owner.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	seeded := 0
	if len(repos.Clients.All()) == 0 {
		for _, c := range []client.Client{owner, tenant, buyer} {
			repos.Clients.Upsert(c)
		}
		seeded++
	}
	if len(repos.Properties.All()) == 0 {
		for _, p := range []listing.Property{apartment, villa, studio} {
			repos.Properties.Upsert(p)
		}
		seeded++
	}

	if len(repos.Rentals.AllContracts()) == 0 {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -3, 0)
		contract := rental.Contract{
			ID:            uuid.NewString(),
			PropertyID:    apartment.ID,
			TenantID:      tenant.ID,
			OwnerID:       owner.ID,
			StartDate:     start,
			EndDate:       start.AddDate(1, 0, 0),
			MonthlyRent:   8500,
			Deposit:       17000,
			Status:        rental.ContractActive,
			PaymentDueDay: 5,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		repos.Rentals.UpsertContract(contract)

		paid := start.AddDate(0, 0, 4)
		repos.Rentals.UpsertPayment(rental.Payment{
			ID:         uuid.NewString(),
			ContractID: contract.ID,
			Amount:     8500,
			DueDate:    start.AddDate(0, 0, 4),
			PaidDate:   &paid,
			Status:     rental.PaymentPaid,
			Method:     "bank_transfer",
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		repos.Rentals.UpsertPayment(rental.Payment{
			ID:         uuid.NewString(),
			ContractID: contract.ID,
			Amount:     8500,
			DueDate:    time.Date(now.Year(), now.Month(), 5, 0, 0, 0, 0, time.UTC),
			Status:     rental.PaymentPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		seeded++
	}

	if seeded > 0 {
		logging.Logger.Infof("seed: loaded demo data into %d collection group(s)", seeded)
	}
}
