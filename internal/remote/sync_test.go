package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
	"github.com/aqarcrm/aqarcrm/internal/core/maintenance"
	"github.com/aqarcrm/aqarcrm/internal/core/rental"
	"github.com/aqarcrm/aqarcrm/internal/core/validation"
	"github.com/aqarcrm/aqarcrm/internal/core/visit"
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

type testRepos struct {
	properties  *listing.Repository
	clients     *client.Repository
	rentals     *rental.Repository
	maintenance *maintenance.Repository
	visits      *visit.Repository
}

func newSyncService(t *testing.T, baseURL, secret string) (*Service, testRepos) {
	t.Helper()
	store := storage.NewMemoryStore()
	repos := testRepos{
		properties:  listing.NewRepository(store),
		clients:     client.NewRepository(store),
		rentals:     rental.NewRepository(store),
		maintenance: maintenance.NewRepository(store),
		visits:      visit.NewRepository(store),
	}
	svc := NewService(
		NewClient(baseURL, secret, "aqarcrm-test"),
		validation.NewValidator(),
		repos.properties,
		repos.clients,
		repos.rentals,
		repos.maintenance,
		repos.visits,
	)
	return svc, repos
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestSyncAllReplacesOnValidSnapshotKeepsLocalOnFailure(t *testing.T) {
	const secret = "sync-secret"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, "/api/v1/collections/")
		switch key {
		case storage.KeyProperties:
			// A well-formed snapshot that should replace local data.
			w.Write([]byte(`[{"id": "remote-1", "title": "Remote apartment", "type": "apartment", "status": "available", "location": "Casablanca"}]`))
		case storage.KeyClients:
			// Wrong shape: must be rejected by schema validation.
			w.Write([]byte(`{"not": "an array"}`))
		case storage.KeyContracts:
			http.Error(w, "upstream outage", http.StatusInternalServerError)
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	svc, repos := newSyncService(t, server.URL, secret)

	repos.properties.Upsert(listing.Property{ID: "local-1", Title: "Local apartment", Location: "Rabat"})
	repos.clients.Upsert(client.Client{ID: "local-c1", Name: "Fatima", Role: client.RoleTenant, Status: client.StatusActive})
	repos.rentals.UpsertContract(rental.Contract{ID: "local-ct1"})

	report := svc.SyncAll(context.Background())

	if !contains(report.Refreshed, storage.KeyProperties) {
		t.Fatalf("properties not refreshed: %+v", report)
	}
	props := repos.properties.All()
	if len(props) != 1 || props[0].ID != "remote-1" {
		t.Fatalf("valid snapshot did not replace local data: %+v", props)
	}

	// Schema-rejected snapshot: local clients untouched, failure recorded.
	if _, ok := report.KeptLocal[storage.KeyClients]; !ok {
		t.Fatalf("client failure not recorded: %+v", report)
	}
	clients := repos.clients.All()
	if len(clients) != 1 || clients[0].ID != "local-c1" {
		t.Fatalf("rejected snapshot modified local clients: %+v", clients)
	}

	// Server error: local contracts untouched, failure recorded.
	if _, ok := report.KeptLocal[storage.KeyContracts]; !ok {
		t.Fatalf("contract failure not recorded: %+v", report)
	}
	contracts := repos.rentals.AllContracts()
	if len(contracts) != 1 || contracts[0].ID != "local-ct1" {
		t.Fatalf("failed fetch modified local contracts: %+v", contracts)
	}
}

func TestSyncAllCleanRunHasNoKeptLocal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc, _ := newSyncService(t, server.URL, "sync-secret")

	report := svc.SyncAll(context.Background())
	if report.KeptLocal != nil {
		t.Fatalf("clean run should omit kept_local, got %+v", report.KeptLocal)
	}
	if len(report.Refreshed) != 6 {
		t.Fatalf("refreshed %d collections, want 6", len(report.Refreshed))
	}
}

func TestFetchSnapshotSendsSignedServiceToken(t *testing.T) {
	const secret = "sync-secret"

	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, secret, "aqarcrm-test")
	if _, err := c.FetchSnapshot(context.Background(), storage.KeyProperties); err != nil {
		t.Fatal(err)
	}

	raw, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		t.Fatalf("missing bearer token, got %q", authHeader)
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != "snapshot-sync" {
		t.Fatalf("got subject %q", claims.Subject)
	}
	if claims.Issuer != "aqarcrm-test" {
		t.Fatalf("got issuer %q", claims.Issuer)
	}
}
