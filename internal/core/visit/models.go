package visit

import "time"

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

type VisitType string

const (
	TypeFirstVisit  VisitType = "first_visit"
	TypeSecondVisit VisitType = "second_visit"
	TypeInspection  VisitType = "inspection"
	TypeHandover    VisitType = "handover"
)

func (t VisitType) Valid() bool {
	switch t {
	case TypeFirstVisit, TypeSecondVisit, TypeInspection, TypeHandover:
		return true
	}
	return false
}

type Outcome string

const (
	OutcomeInterested    Outcome = "interested"
	OutcomeNotInterested Outcome = "not_interested"
	OutcomeOffer         Outcome = "offer_made"
	OutcomeUndecided     Outcome = "undecided"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeInterested, OutcomeNotInterested, OutcomeOffer, OutcomeUndecided:
		return true
	}
	return false
}

// Visit links a property and a client by weak reference, optionally an agent.
type Visit struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	ClientID     string    `json:"client_id"`
	AgentID      string    `json:"agent_id,omitempty"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Duration     int       `json:"duration_minutes"`
	Status       Status    `json:"status"`
	Type         VisitType `json:"type"`
	Outcome      Outcome   `json:"outcome,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	ReminderSent bool      `json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateVisitRequest struct {
	PropertyID  string    `json:"property_id" binding:"required"`
	ClientID    string    `json:"client_id" binding:"required"`
	AgentID     string    `json:"agent_id"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Duration    int       `json:"duration_minutes"`
	Type        VisitType `json:"type" binding:"required"`
	Notes       string    `json:"notes"`
}

type UpdateVisitRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Duration    *int       `json:"duration_minutes"`
	Status      Status     `json:"status"`
	Type        VisitType  `json:"type"`
	Outcome     Outcome    `json:"outcome"`
	Notes       *string    `json:"notes"`
	AgentID     *string    `json:"agent_id"`
}

type Filter struct {
	PropertyID string     `form:"property_id"`
	ClientID   string     `form:"client_id"`
	AgentID    string     `form:"agent_id"`
	Status     Status     `form:"status"`
	Type       VisitType  `form:"type"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
}
