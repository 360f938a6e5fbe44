package visit

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
	"github.com/aqarcrm/aqarcrm/internal/core/query"
	"github.com/aqarcrm/aqarcrm/internal/logging"
	"github.com/aqarcrm/aqarcrm/internal/storage"
	"github.com/aqarcrm/aqarcrm/internal/whatsapp"
)

var (
	ErrNotFound   = errors.New("visit not found")
	ErrValidation = errors.New("visit validation failed")
)

// reminderWindow is how far ahead the reminder sweep looks.
const reminderWindow = 24 * time.Hour

type Repository struct {
	col *storage.Collection[Visit]
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		col: storage.NewCollection(store, storage.KeyVisits, func(v Visit) string { return v.ID }, nil),
	}
}

func (r *Repository) All() []Visit                { return r.col.All() }
func (r *Repository) Get(id string) (Visit, bool) { return r.col.Get(id) }
func (r *Repository) Upsert(v Visit)              { r.col.Upsert(v) }
func (r *Repository) Delete(id string) bool       { return r.col.Delete(id) }
func (r *Repository) Replace(items []Visit)       { r.col.Replace(items) }

type Service struct {
	repo       *Repository
	clients    *client.Repository
	properties *listing.Repository
	sender     whatsapp.Sender
}

func NewService(repo *Repository, clients *client.Repository, properties *listing.Repository, sender whatsapp.Sender) *Service {
	return &Service{repo: repo, clients: clients, properties: properties, sender: sender}
}

func (s *Service) Create(req *CreateVisitRequest) (Visit, error) {
	if !req.Type.Valid() {
		return Visit{}, fmt.Errorf("%w: unknown visit type %q", ErrValidation, req.Type)
	}
	duration := req.Duration
	if duration == 0 {
		duration = 30
	}
	if duration < 0 {
		return Visit{}, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	now := time.Now()
	v := Visit{
		ID:          uuid.NewString(),
		PropertyID:  req.PropertyID,
		ClientID:    req.ClientID,
		AgentID:     req.AgentID,
		ScheduledAt: req.ScheduledAt,
		Duration:    duration,
		Status:      StatusScheduled,
		Type:        req.Type,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.repo.Upsert(v)
	return v, nil
}

func (s *Service) Get(id string) (Visit, error) {
	v, ok := s.repo.Get(id)
	if !ok {
		return Visit{}, ErrNotFound
	}
	return v, nil
}

func (s *Service) List(f Filter) []Visit {
	var out []Visit
	for _, v := range s.repo.All() {
		if !query.Equals(f.PropertyID, v.PropertyID) ||
			!query.Equals(f.ClientID, v.ClientID) ||
			!query.Equals(f.AgentID, v.AgentID) ||
			!query.Equals(string(f.Status), string(v.Status)) ||
			!query.Equals(string(f.Type), string(v.Type)) {
			continue
		}
		if f.From != nil && v.ScheduledAt.Before(*f.From) {
			continue
		}
		if f.To != nil && v.ScheduledAt.After(*f.To) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (s *Service) Update(id string, req *UpdateVisitRequest) (Visit, error) {
	v, ok := s.repo.Get(id)
	if !ok {
		return Visit{}, ErrNotFound
	}

	if req.ScheduledAt != nil {
		v.ScheduledAt = *req.ScheduledAt
		// A moved visit needs a fresh reminder.
		v.ReminderSent = false
		if v.Status == StatusScheduled || v.Status == StatusConfirmed {
			v.Status = StatusRescheduled
		}
	}
	if req.Duration != nil {
		v.Duration = *req.Duration
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return Visit{}, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
		v.Status = req.Status
	}
	if req.Type != "" {
		if !req.Type.Valid() {
			return Visit{}, fmt.Errorf("%w: unknown visit type %q", ErrValidation, req.Type)
		}
		v.Type = req.Type
	}
	if req.Outcome != "" {
		if !req.Outcome.Valid() {
			return Visit{}, fmt.Errorf("%w: unknown outcome %q", ErrValidation, req.Outcome)
		}
		v.Outcome = req.Outcome
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}
	if req.AgentID != nil {
		v.AgentID = *req.AgentID
	}

	v.UpdatedAt = time.Now()
	s.repo.Upsert(v)
	return v, nil
}

func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// SendReminders messages clients with a visit inside the reminder window that
// has not been reminded yet, then flips the flag. Unresolvable client or
// property references are skipped, not errors.
func (s *Service) SendReminders(now time.Time) int {
	sent := 0
	for _, v := range s.repo.All() {
		if v.ReminderSent {
			continue
		}
		if v.Status != StatusScheduled && v.Status != StatusConfirmed && v.Status != StatusRescheduled {
			continue
		}
		if v.ScheduledAt.Before(now) || v.ScheduledAt.Sub(now) > reminderWindow {
			continue
		}

		c, ok := s.clients.Get(v.ClientID)
		if !ok || c.Phone == "" {
			continue
		}
		place := "the property"
		if p, ok := s.properties.Get(v.PropertyID); ok {
			place = p.Title + " (" + p.Location + ")"
		}

		body := fmt.Sprintf("Reminder: your visit of %s is scheduled for %s.",
			place, v.ScheduledAt.Format("Mon 02 Jan 15:04"))
		if err := s.sender.Send(c.Phone, body); err != nil {
			logging.Logger.WithError(err).Warnf("visit: reminder to client %s failed", c.ID)
			continue
		}

		v.ReminderSent = true
		v.UpdatedAt = now
		s.repo.Upsert(v)
		sent++
	}
	if sent > 0 {
		logging.Logger.Infof("visit: sent %d reminder(s)", sent)
	}
	return sent
}
