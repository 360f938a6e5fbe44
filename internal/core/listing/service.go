package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("property not found")
	ErrCodeExists = errors.New("property code already exists")
	ErrValidation = errors.New("property validation failed")
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(req *CreatePropertyRequest) (Property, error) {
	if !req.Type.Valid() {
		return Property{}, fmt.Errorf("%w: unknown property type %q", ErrValidation, req.Type)
	}
	if !req.TransactionType.Valid() {
		return Property{}, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, req.TransactionType)
	}
	if req.Condition != "" && !req.Condition.Valid() {
		return Property{}, fmt.Errorf("%w: unknown condition %q", ErrValidation, req.Condition)
	}
	status := req.Status
	if status == "" {
		status = StatusAvailable
	}
	if !status.Valid() {
		return Property{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if req.Price < 0 || req.Surface < 0 {
		return Property{}, fmt.Errorf("%w: price and surface must be non-negative", ErrValidation)
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = generateCode()
	}
	if _, exists := s.repo.GetByCode(code); exists {
		return Property{}, ErrCodeExists
	}

	now := time.Now()
	p := Property{
		ID:              uuid.NewString(),
		Code:            code,
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		Condition:       req.Condition,
		TransactionType: req.TransactionType,
		Status:          status,
		Surface:         req.Surface,
		Price:           req.Price,
		Rooms:           req.Rooms,
		Location:        req.Location,
		Features:        req.Features,
		Photos:          req.Photos,
		Videos:          req.Videos,
		OwnerID:         req.OwnerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.repo.Upsert(p)
	return p, nil
}

func (s *Service) Get(id string) (Property, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return Property{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(filter Filter, sortOpt SortOption) *ListPropertiesResponse {
	matched := filter.Apply(s.repo.All())
	sorted := Sort(matched, sortOpt)
	return &ListPropertiesResponse{Properties: sorted, Total: len(sorted)}
}

func (s *Service) Update(id string, req *UpdatePropertyRequest) (Property, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return Property{}, ErrNotFound
	}

	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Type != "" {
		if !req.Type.Valid() {
			return Property{}, fmt.Errorf("%w: unknown property type %q", ErrValidation, req.Type)
		}
		p.Type = req.Type
	}
	if req.Condition != "" {
		if !req.Condition.Valid() {
			return Property{}, fmt.Errorf("%w: unknown condition %q", ErrValidation, req.Condition)
		}
		p.Condition = req.Condition
	}
	if req.TransactionType != "" {
		if !req.TransactionType.Valid() {
			return Property{}, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, req.TransactionType)
		}
		p.TransactionType = req.TransactionType
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return Property{}, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
		p.Status = req.Status
	}
	if req.Surface != nil {
		if *req.Surface < 0 {
			return Property{}, fmt.Errorf("%w: surface must be non-negative", ErrValidation)
		}
		p.Surface = *req.Surface
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return Property{}, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		p.Price = *req.Price
	}
	if req.Rooms != nil {
		p.Rooms = *req.Rooms
	}
	if req.Location != "" {
		p.Location = req.Location
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.Photos != nil {
		p.Photos = *req.Photos
	}
	if req.Videos != nil {
		p.Videos = *req.Videos
	}
	if req.OwnerID != nil {
		p.OwnerID = *req.OwnerID
	}

	p.UpdatedAt = time.Now()
	s.repo.Upsert(p)
	return p, nil
}

func (s *Service) UpdateStatus(id string, status Status) (Property, error) {
	if !status.Valid() {
		return Property{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	p, ok := s.repo.Get(id)
	if !ok {
		return Property{}, ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	s.repo.Upsert(p)
	return p, nil
}

func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}

func generateCode() string {
	return "PROP-" + strings.ToUpper(uuid.NewString()[:8])
}
