package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
	"github.com/aqarcrm/aqarcrm/internal/core/maintenance"
	"github.com/aqarcrm/aqarcrm/internal/core/rental"
	"github.com/aqarcrm/aqarcrm/internal/core/validation"
	"github.com/aqarcrm/aqarcrm/internal/core/visit"
	"github.com/aqarcrm/aqarcrm/internal/logging"
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

// SyncReport lists which collections were refreshed and which were kept
// local after a failure.
type SyncReport struct {
	Refreshed []string          `json:"refreshed"`
	KeptLocal map[string]string `json:"kept_local,omitempty"`
}

type Service struct {
	client      *Client
	validator   *validation.Validator
	properties  *listing.Repository
	clients     *client.Repository
	rentals     *rental.Repository
	maintenance *maintenance.Repository
	visits      *visit.Repository
}

func NewService(
	c *Client,
	v *validation.Validator,
	properties *listing.Repository,
	clients *client.Repository,
	rentals *rental.Repository,
	maint *maintenance.Repository,
	visits *visit.Repository,
) *Service {
	return &Service{
		client:      c,
		validator:   v,
		properties:  properties,
		clients:     clients,
		rentals:     rentals,
		maintenance: maint,
		visits:      visits,
	}
}

// SyncAll refreshes every syncable collection. A fetched snapshot replaces
// the local one only after schema validation and decoding both succeed; any
// failure keeps the local snapshot untouched.
func (s *Service) SyncAll(ctx context.Context) *SyncReport {
	report := &SyncReport{KeptLocal: make(map[string]string)}

	refresh(ctx, s, report, storage.KeyProperties, s.properties.Replace)
	refresh(ctx, s, report, storage.KeyClients, s.clients.Replace)
	refresh(ctx, s, report, storage.KeyContracts, s.rentals.ReplaceContracts)
	refresh(ctx, s, report, storage.KeyPayments, s.rentals.ReplacePayments)
	refresh(ctx, s, report, storage.KeyMaintenance, s.maintenance.Replace)
	refresh(ctx, s, report, storage.KeyVisits, s.visits.Replace)

	if len(report.KeptLocal) == 0 {
		report.KeptLocal = nil
	}
	return report
}

func refresh[T any](ctx context.Context, s *Service, report *SyncReport, key string, replace func([]T)) {
	items, err := fetchCollection[T](ctx, s, key)
	if err != nil {
		logging.Logger.WithError(err).Warnf("remote: keeping local %q", key)
		report.KeptLocal[key] = err.Error()
		return
	}
	replace(items)
	report.Refreshed = append(report.Refreshed, key)
	logging.Logger.Infof("remote: refreshed %q (%d records)", key, len(items))
}

func fetchCollection[T any](ctx context.Context, s *Service, key string) ([]T, error) {
	raw, err := s.client.FetchSnapshot(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSnapshot(key, raw); err != nil {
		return nil, fmt.Errorf("snapshot rejected: %w", err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("snapshot decode failed: %w", err)
	}
	return items, nil
}
