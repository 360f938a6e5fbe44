package matching

import (
	"errors"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
)

var ErrNoNeeds = errors.New("client has no recorded needs")

type Service struct {
	clients    *client.Repository
	properties *listing.Repository
}

func NewService(clients *client.Repository, properties *listing.Repository) *Service {
	return &Service{clients: clients, properties: properties}
}

// MatchesForClient resolves the client's needs and matches them against the
// current inventory.
func (s *Service) MatchesForClient(clientID string) ([]listing.Property, error) {
	c, ok := s.clients.Get(clientID)
	if !ok {
		return nil, client.ErrNotFound
	}
	if c.Needs == nil {
		return nil, ErrNoNeeds
	}
	return Match(*c.Needs, s.properties.All()), nil
}
