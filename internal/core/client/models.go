package client

import (
	"time"

	"github.com/aqarcrm/aqarcrm/internal/core/listing"
)

type Role string

const (
	RoleTenant Role = "tenant"
	RoleOwner  Role = "owner"
	RoleBuyer  Role = "buyer"
)

func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleOwner || r == RoleBuyer
}

// HasNeeds reports whether clients of this role carry a structured
// requirement record.
func (r Role) HasNeeds() bool {
	return r == RoleBuyer || r == RoleTenant
}

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusProspect  Status = "prospect"
	StatusConverted Status = "converted"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusProspect, StatusConverted, StatusArchived:
		return true
	}
	return false
}

type InteractionType string

const (
	InteractionCall            InteractionType = "call"
	InteractionAppointment     InteractionType = "appointment"
	InteractionWhatsApp        InteractionType = "whatsapp"
	InteractionEmail           InteractionType = "email"
	InteractionViewing         InteractionType = "viewing"
	InteractionContractSigning InteractionType = "contract_signing"
	InteractionFollowUp        InteractionType = "follow_up"
	InteractionComplaint       InteractionType = "complaint"
	InteractionPayment         InteractionType = "payment"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionCall, InteractionAppointment, InteractionWhatsApp, InteractionEmail,
		InteractionViewing, InteractionContractSigning, InteractionFollowUp,
		InteractionComplaint, InteractionPayment:
		return true
	}
	return false
}

type Outcome string

const (
	OutcomeInterested    Outcome = "interested"
	OutcomeNotInterested Outcome = "not_interested"
	OutcomeFollowUp      Outcome = "follow_up_needed"
	OutcomeNoAnswer      Outcome = "no_answer"
	OutcomeClosed        Outcome = "closed"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeInterested, OutcomeNotInterested, OutcomeFollowUp, OutcomeNoAnswer, OutcomeClosed:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Interaction is owned exclusively by its client: it is only ever appended to
// the client's sequence, never mutated or removed on its own.
type Interaction struct {
	ID         string          `json:"id"`
	Type       InteractionType `json:"type"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	Outcome    Outcome         `json:"outcome,omitempty"`
	FollowUpAt *time.Time      `json:"follow_up_at,omitempty"`
	Duration   int             `json:"duration_minutes,omitempty"`
	Location   string          `json:"location,omitempty"`
}

// Needs is the client's structured property requirement. Present only for
// buyer and tenant roles.
type Needs struct {
	ID            string                 `json:"id"`
	PropertyTypes []listing.PropertyType `json:"property_types,omitempty"`
	MinSurface    float64                `json:"min_surface,omitempty"`
	MaxSurface    float64                `json:"max_surface,omitempty"`
	MinPrice      float64                `json:"min_price,omitempty"`
	MaxPrice      float64                `json:"max_price,omitempty"`
	Locations     []string               `json:"locations,omitempty"`
	Features      []string               `json:"features,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	Urgency       Urgency                `json:"urgency,omitempty"`
	Timeline      string                 `json:"timeline,omitempty"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// Client is a CRM contact. AgentID is a weak reference to an agent record.
type Client struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email,omitempty"`
	Phone          string        `json:"phone"`
	SecondaryPhone string        `json:"secondary_phone,omitempty"`
	Address        string        `json:"address,omitempty"`
	Role           Role          `json:"role"`
	Status         Status        `json:"status"`
	Tags           []string      `json:"tags,omitempty"`
	Budget         float64       `json:"budget,omitempty"`
	AgentID        string        `json:"agent_id,omitempty"`
	Interactions   []Interaction `json:"interactions,omitempty"`
	Needs          *Needs        `json:"needs,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// LatestInteraction returns the most recent interaction date, or a zero time
// when the client has none (sorts as lowest possible).
func (c Client) LatestInteraction() time.Time {
	var latest time.Time
	for _, in := range c.Interactions {
		if in.Date.After(latest) {
			latest = in.Date
		}
	}
	return latest
}

type CreateClientRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone" binding:"required"`
	SecondaryPhone string   `json:"secondary_phone"`
	Address        string   `json:"address"`
	Role           Role     `json:"role" binding:"required"`
	Status         Status   `json:"status"`
	Tags           []string `json:"tags"`
	Budget         float64  `json:"budget"`
	AgentID        string   `json:"agent_id"`
}

type UpdateClientRequest struct {
	Name           string    `json:"name"`
	Email          *string   `json:"email"`
	Phone          string    `json:"phone"`
	SecondaryPhone *string   `json:"secondary_phone"`
	Address        *string   `json:"address"`
	Role           Role      `json:"role"`
	Status         Status    `json:"status"`
	Tags           *[]string `json:"tags"`
	Budget         *float64  `json:"budget"`
	AgentID        *string   `json:"agent_id"`
}

type AddInteractionRequest struct {
	Type       InteractionType `json:"type" binding:"required"`
	Date       *time.Time      `json:"date"`
	Notes      string          `json:"notes"`
	Outcome    Outcome         `json:"outcome"`
	FollowUpAt *time.Time      `json:"follow_up_at"`
	Duration   int             `json:"duration_minutes"`
	Location   string          `json:"location"`
}

type SetNeedsRequest struct {
	PropertyTypes []listing.PropertyType `json:"property_types"`
	MinSurface    float64                `json:"min_surface"`
	MaxSurface    float64                `json:"max_surface"`
	MinPrice      float64                `json:"min_price"`
	MaxPrice      float64                `json:"max_price"`
	Locations     []string               `json:"locations"`
	Features      []string               `json:"features"`
	Notes         string                 `json:"notes"`
	Urgency       Urgency                `json:"urgency"`
	Timeline      string                 `json:"timeline"`
}

type ListClientsResponse struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total"`
}
