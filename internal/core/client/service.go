package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("client not found")
	ErrValidation   = errors.New("client validation failed")
	ErrNeedsForRole = errors.New("needs are only tracked for buyer and tenant clients")
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(req *CreateClientRequest) (Client, error) {
	if !req.Role.Valid() {
		return Client{}, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	status := req.Status
	if status == "" {
		status = StatusProspect
	}
	if !status.Valid() {
		return Client{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	now := time.Now()
	c := Client{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		SecondaryPhone: req.SecondaryPhone,
		Address:        req.Address,
		Role:           req.Role,
		Status:         status,
		Tags:           req.Tags,
		Budget:         req.Budget,
		AgentID:        req.AgentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.repo.Upsert(c)
	return c, nil
}

func (s *Service) Get(id string) (Client, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return Client{}, ErrNotFound
	}
	return c, nil
}

func (s *Service) List(filter Filter, sortOpt SortOption) *ListClientsResponse {
	matched := filter.Apply(s.repo.All())
	sorted := Sort(matched, sortOpt)
	return &ListClientsResponse{Clients: sorted, Total: len(sorted)}
}

func (s *Service) Update(id string, req *UpdateClientRequest) (Client, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return Client{}, ErrNotFound
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != "" {
		c.Phone = req.Phone
	}
	if req.SecondaryPhone != nil {
		c.SecondaryPhone = *req.SecondaryPhone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			return Client{}, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
		}
		c.Role = req.Role
		if !c.Role.HasNeeds() {
			c.Needs = nil
		}
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return Client{}, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
		c.Status = req.Status
	}
	if req.Tags != nil {
		c.Tags = *req.Tags
	}
	if req.Budget != nil {
		c.Budget = *req.Budget
	}
	if req.AgentID != nil {
		c.AgentID = *req.AgentID
	}

	c.UpdatedAt = time.Now()
	s.repo.Upsert(c)
	return c, nil
}

func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// AddInteraction appends to the client's owned interaction sequence.
func (s *Service) AddInteraction(clientID string, req *AddInteractionRequest) (Client, error) {
	c, ok := s.repo.Get(clientID)
	if !ok {
		return Client{}, ErrNotFound
	}
	if !req.Type.Valid() {
		return Client{}, fmt.Errorf("%w: unknown interaction type %q", ErrValidation, req.Type)
	}
	if req.Outcome != "" && !req.Outcome.Valid() {
		return Client{}, fmt.Errorf("%w: unknown outcome %q", ErrValidation, req.Outcome)
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	c.Interactions = append(c.Interactions, Interaction{
		ID:         uuid.NewString(),
		Type:       req.Type,
		Date:       date,
		Notes:      req.Notes,
		Outcome:    req.Outcome,
		FollowUpAt: req.FollowUpAt,
		Duration:   req.Duration,
		Location:   req.Location,
	})
	c.UpdatedAt = time.Now()
	s.repo.Upsert(c)
	return c, nil
}

// SetNeeds replaces the client's requirement record. Min/max consistency is a
// form-layer concern and is not enforced here.
func (s *Service) SetNeeds(clientID string, req *SetNeedsRequest) (Client, error) {
	c, ok := s.repo.Get(clientID)
	if !ok {
		return Client{}, ErrNotFound
	}
	if !c.Role.HasNeeds() {
		return Client{}, ErrNeedsForRole
	}
	for _, t := range req.PropertyTypes {
		if !t.Valid() {
			return Client{}, fmt.Errorf("%w: unknown property type %q", ErrValidation, t)
		}
	}
	if req.Urgency != "" && !req.Urgency.Valid() {
		return Client{}, fmt.Errorf("%w: unknown urgency %q", ErrValidation, req.Urgency)
	}

	needsID := uuid.NewString()
	if c.Needs != nil {
		needsID = c.Needs.ID
	}
	c.Needs = &Needs{
		ID:            needsID,
		PropertyTypes: req.PropertyTypes,
		MinSurface:    req.MinSurface,
		MaxSurface:    req.MaxSurface,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		Locations:     req.Locations,
		Features:      req.Features,
		Notes:         req.Notes,
		Urgency:       req.Urgency,
		Timeline:      req.Timeline,
		UpdatedAt:     time.Now(),
	}
	c.UpdatedAt = time.Now()
	s.repo.Upsert(c)
	return c, nil
}
