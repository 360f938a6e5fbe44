package maintenance

import "time"

type Category string

const (
	CategoryPlumbing   Category = "plumbing"
	CategoryElectrical Category = "electrical"
	CategoryHVAC       Category = "hvac"
	CategoryPainting   Category = "painting"
	CategoryGeneral    Category = "general"
	CategoryOther      Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryHVAC, CategoryPainting, CategoryGeneral, CategoryOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Status string

const (
	StatusReported   Status = "reported"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusReported, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Request references a property and optionally the contract/tenant it came
// through; all references are weak.
type Request struct {
	ID          string     `json:"id"`
	PropertyID  string     `json:"property_id"`
	ContractID  string     `json:"contract_id,omitempty"`
	TenantID    string     `json:"tenant_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	ReportedAt  time.Time  `json:"reported_at"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Cost        float64    `json:"cost,omitempty"`
	Photos      []string   `json:"photos,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateRequestRequest struct {
	PropertyID  string   `json:"property_id" binding:"required"`
	ContractID  string   `json:"contract_id"`
	TenantID    string   `json:"tenant_id"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    Category `json:"category" binding:"required"`
	Priority    Priority `json:"priority"`
	Photos      []string `json:"photos"`
}

type UpdateRequestRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Cost        *float64   `json:"cost"`
	Photos      *[]string  `json:"photos"`
}

type Filter struct {
	Search     string   `form:"search"`
	PropertyID string   `form:"property_id"`
	ContractID string   `form:"contract_id"`
	Category   Category `form:"category"`
	Priority   Priority `form:"priority"`
	Status     Status   `form:"status"`
}
