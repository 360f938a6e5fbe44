package storage

import (
	"encoding/json"

	"github.com/aqarcrm/aqarcrm/internal/logging"
)

// Collection keys. Every persisted collection lives under one of these.
const (
	KeyProperties  = "properties"
	KeyClients     = "clients"
	KeyUsers       = "users"
	KeyContracts   = "rental_contracts"
	KeyPayments    = "rental_payments"
	KeyAlerts      = "rental_alerts"
	KeyMaintenance = "maintenance_requests"
	KeyVisits      = "property_visits"
	KeyCampaigns   = "campaigns"
)

// Store is a key-value persistence shim. Values are opaque JSON blobs, one
// per collection key.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Close() error
}

// LoadJSON reads a collection from the store. On a missing key, corrupt
// payload or store failure it logs and returns defaultValue: callers always
// get a usable in-memory state, never a startup failure.
func LoadJSON[T any](s Store, key string, defaultValue T) T {
	raw, ok, err := s.Load(key)
	if err != nil {
		logging.Logger.WithError(err).Warnf("storage: load %q failed, using default", key)
		return defaultValue
	}
	if !ok {
		return defaultValue
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		logging.Logger.WithError(err).Warnf("storage: corrupt payload under %q, using default", key)
		return defaultValue
	}
	return out
}

// SaveJSON mirrors a collection back to the store. Persistence is a
// side-effect mirror of in-memory state: failures are logged, not propagated.
func SaveJSON[T any](s Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		logging.Logger.WithError(err).Errorf("storage: marshal %q failed", key)
		return
	}
	if err := s.Save(key, raw); err != nil {
		logging.Logger.WithError(err).Warnf("storage: save %q failed", key)
	}
}
