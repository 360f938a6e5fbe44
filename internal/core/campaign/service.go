package campaign

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/logging"
	"github.com/aqarcrm/aqarcrm/internal/storage"
	"github.com/aqarcrm/aqarcrm/internal/whatsapp"
)

var (
	ErrNotFound    = errors.New("campaign not found")
	ErrAlreadySent = errors.New("campaign already sent")
)

type Repository struct {
	col *storage.Collection[Campaign]
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		col: storage.NewCollection(store, storage.KeyCampaigns, func(c Campaign) string { return c.ID }, nil),
	}
}

func (r *Repository) All() []Campaign                { return r.col.All() }
func (r *Repository) Get(id string) (Campaign, bool) { return r.col.Get(id) }
func (r *Repository) Upsert(c Campaign)              { r.col.Upsert(c) }
func (r *Repository) Delete(id string) bool          { return r.col.Delete(id) }

type Service struct {
	repo    *Repository
	clients *client.Service
	sender  whatsapp.Sender
}

func NewService(repo *Repository, clients *client.Service, sender whatsapp.Sender) *Service {
	return &Service{repo: repo, clients: clients, sender: sender}
}

func (s *Service) Create(req *CreateCampaignRequest) Campaign {
	c := Campaign{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Message:   req.Message,
		Audience:  req.Audience,
		Status:    StatusDraft,
		CreatedAt: time.Now(),
	}
	s.repo.Upsert(c)
	return c
}

func (s *Service) Get(id string) (Campaign, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return Campaign{}, ErrNotFound
	}
	return c, nil
}

func (s *Service) List() []Campaign {
	return s.repo.All()
}

func (s *Service) Update(id string, req *UpdateCampaignRequest) (Campaign, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return Campaign{}, ErrNotFound
	}
	if c.Status == StatusSent {
		return Campaign{}, ErrAlreadySent
	}
	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Message != "" {
		c.Message = req.Message
	}
	if req.Audience != nil {
		c.Audience = *req.Audience
	}
	s.repo.Upsert(c)
	return c, nil
}

func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// Preview evaluates the audience filter without sending.
func (s *Service) Preview(id string) ([]client.Client, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	resp := s.clients.List(c.Audience, client.SortNameAsc)
	return resp.Clients, nil
}

// Send messages every client in the audience and records a whatsapp
// interaction on each recipient. Per-recipient failures are counted, not
// fatal; the campaign ends up sent (some delivered) or failed (none).
func (s *Service) Send(id string) (*SendResult, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if c.Status == StatusSent || c.Status == StatusSending {
		return nil, ErrAlreadySent
	}

	audience := s.clients.List(c.Audience, client.SortNameAsc).Clients
	c.Status = StatusSending
	c.Recipients = len(audience)
	c.Sent = 0
	c.Failed = 0
	s.repo.Upsert(c)

	for _, recipient := range audience {
		if recipient.Phone == "" {
			c.Failed++
			continue
		}
		if err := s.sender.Send(recipient.Phone, c.Message); err != nil {
			logging.Logger.WithError(err).Warnf("campaign %s: send to client %s failed", c.ID, recipient.ID)
			c.Failed++
			continue
		}
		c.Sent++

		notes := "campaign: " + c.Name
		if _, err := s.clients.AddInteraction(recipient.ID, &client.AddInteractionRequest{
			Type:  client.InteractionWhatsApp,
			Notes: notes,
		}); err != nil {
			logging.Logger.WithError(err).Warnf("campaign %s: interaction log for client %s failed", c.ID, recipient.ID)
		}
	}

	now := time.Now()
	c.SentAt = &now
	if c.Sent == 0 && c.Recipients > 0 {
		c.Status = StatusFailed
	} else {
		c.Status = StatusSent
	}
	s.repo.Upsert(c)

	return &SendResult{Campaign: c, Recipients: c.Recipients, Sent: c.Sent, Failed: c.Failed}, nil
}
