package maintenance

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aqarcrm/aqarcrm/internal/core/query"
	"github.com/aqarcrm/aqarcrm/internal/storage"
)

var (
	ErrNotFound   = errors.New("maintenance request not found")
	ErrValidation = errors.New("maintenance validation failed")
)

type Repository struct {
	col *storage.Collection[Request]
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		col: storage.NewCollection(store, storage.KeyMaintenance, func(r Request) string { return r.ID }, nil),
	}
}

func (r *Repository) All() []Request                { return r.col.All() }
func (r *Repository) Get(id string) (Request, bool) { return r.col.Get(id) }
func (r *Repository) Upsert(req Request)            { r.col.Upsert(req) }
func (r *Repository) Delete(id string) bool         { return r.col.Delete(id) }
func (r *Repository) Replace(items []Request)       { r.col.Replace(items) }

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(req *CreateRequestRequest) (Request, error) {
	if !req.Category.Valid() {
		return Request{}, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return Request{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, priority)
	}

	now := time.Now()
	m := Request{
		ID:          uuid.NewString(),
		PropertyID:  req.PropertyID,
		ContractID:  req.ContractID,
		TenantID:    req.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      StatusReported,
		ReportedAt:  now,
		Photos:      req.Photos,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.repo.Upsert(m)
	return m, nil
}

func (s *Service) Get(id string) (Request, error) {
	m, ok := s.repo.Get(id)
	if !ok {
		return Request{}, ErrNotFound
	}
	return m, nil
}

func (s *Service) List(f Filter) []Request {
	var out []Request
	for _, m := range s.repo.All() {
		if !query.TextMatches(f.Search, m.Title, m.Description) {
			continue
		}
		if !query.Equals(f.PropertyID, m.PropertyID) ||
			!query.Equals(f.ContractID, m.ContractID) ||
			!query.Equals(string(f.Category), string(m.Category)) ||
			!query.Equals(string(f.Priority), string(m.Priority)) ||
			!query.Equals(string(f.Status), string(m.Status)) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *Service) Update(id string, req *UpdateRequestRequest) (Request, error) {
	m, ok := s.repo.Get(id)
	if !ok {
		return Request{}, ErrNotFound
	}

	if req.Title != "" {
		m.Title = req.Title
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Category != "" {
		if !req.Category.Valid() {
			return Request{}, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
		}
		m.Category = req.Category
	}
	if req.Priority != "" {
		if !req.Priority.Valid() {
			return Request{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, req.Priority)
		}
		m.Priority = req.Priority
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return Request{}, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
		m.Status = req.Status
	}
	if req.ScheduledAt != nil {
		m.ScheduledAt = req.ScheduledAt
		if m.Status == StatusReported {
			m.Status = StatusScheduled
		}
	}
	if req.CompletedAt != nil {
		m.CompletedAt = req.CompletedAt
		m.Status = StatusCompleted
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return Request{}, fmt.Errorf("%w: cost must be non-negative", ErrValidation)
		}
		m.Cost = *req.Cost
	}
	if req.Photos != nil {
		m.Photos = *req.Photos
	}

	m.UpdatedAt = time.Now()
	s.repo.Upsert(m)
	return m, nil
}

func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}
