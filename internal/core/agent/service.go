package agent

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aqarcrm/aqarcrm/internal/storage"
)

var (
	ErrNotFound    = errors.New("agent not found")
	ErrEmailExists = errors.New("agent email already exists")
	ErrValidation  = errors.New("agent validation failed")
)

type Repository struct {
	col *storage.Collection[Agent]
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		col: storage.NewCollection(store, storage.KeyUsers, func(a Agent) string { return a.ID }, nil),
	}
}

func (r *Repository) All() []Agent                { return r.col.All() }
func (r *Repository) Get(id string) (Agent, bool) { return r.col.Get(id) }
func (r *Repository) Upsert(a Agent)              { r.col.Upsert(a) }
func (r *Repository) Delete(id string) bool       { return r.col.Delete(id) }

func (r *Repository) GetByEmail(email string) (Agent, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range r.col.All() {
		if strings.ToLower(a.Email) == email {
			return a, true
		}
	}
	return Agent{}, false
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(req *CreateAgentRequest) (Agent, error) {
	role := req.Role
	if role == "" {
		role = RoleAgent
	}
	if !role.Valid() {
		return Agent{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if _, exists := s.repo.GetByEmail(req.Email); exists {
		return Agent{}, ErrEmailExists
	}

	now := time.Now()
	a := Agent{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return Agent{}, err
		}
		a.PasswordHash = string(hash)
	}
	s.repo.Upsert(a)
	return a, nil
}

func (s *Service) Get(id string) (Agent, error) {
	a, ok := s.repo.Get(id)
	if !ok {
		return Agent{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) List() []Agent {
	return s.repo.All()
}

func (s *Service) Update(id string, req *UpdateAgentRequest) (Agent, error) {
	a, ok := s.repo.Get(id)
	if !ok {
		return Agent{}, ErrNotFound
	}
	if req.Name != "" {
		a.Name = req.Name
	}
	if req.Email != "" && !strings.EqualFold(req.Email, a.Email) {
		if _, exists := s.repo.GetByEmail(req.Email); exists {
			return Agent{}, ErrEmailExists
		}
		a.Email = req.Email
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			return Agent{}, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
		}
		a.Role = req.Role
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return Agent{}, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
		a.Status = req.Status
	}
	a.UpdatedAt = time.Now()
	s.repo.Upsert(a)
	return a, nil
}

func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// SetPassword replaces the stored credential hash.
func (s *Service) SetPassword(id, password string) error {
	a, ok := s.repo.Get(id)
	if !ok {
		return ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	a.UpdatedAt = time.Now()
	s.repo.Upsert(a)
	return nil
}

// CheckPassword verifies a password against the stored hash.
func (s *Service) CheckPassword(id, password string) bool {
	a, ok := s.repo.Get(id)
	if !ok || a.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
