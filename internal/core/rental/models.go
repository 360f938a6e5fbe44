package rental

import "time"

type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractExpired    ContractStatus = "expired"
	ContractTerminated ContractStatus = "terminated"
	ContractDraft      ContractStatus = "draft"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractExpired, ContractTerminated, ContractDraft:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentLate      PaymentStatus = "late"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentPartial   PaymentStatus = "partial"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentLate, PaymentOverdue, PaymentPartial, PaymentCancelled:
		return true
	}
	return false
}

type AlertType string

const (
	AlertPaymentOverdue   AlertType = "payment_overdue"
	AlertContractExpiring AlertType = "contract_expiring"
)

// Contract links a property, a tenant and an owner by weak reference; any of
// them may have been deleted since, so lookups must tolerate dangling IDs.
type Contract struct {
	ID            string         `json:"id"`
	PropertyID    string         `json:"property_id"`
	TenantID      string         `json:"tenant_id"`
	OwnerID       string         `json:"owner_id"`
	StartDate     time.Time      `json:"start_date"`
	EndDate       time.Time      `json:"end_date"`
	MonthlyRent   float64        `json:"monthly_rent"`
	Deposit       float64        `json:"deposit"`
	Status        ContractStatus `json:"status"`
	PaymentDueDay int            `json:"payment_due_day"`
	Terms         string         `json:"terms,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Payment struct {
	ID            string        `json:"id"`
	ContractID    string        `json:"contract_id"`
	Amount        float64       `json:"amount"`
	DueDate       time.Time     `json:"due_date"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method,omitempty"`
	ReceiptNumber string        `json:"receipt_number,omitempty"`
	LateFee       float64       `json:"late_fee,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Alert struct {
	ID         string    `json:"id"`
	Type       AlertType `json:"type"`
	ContractID string    `json:"contract_id"`
	PaymentID  string    `json:"payment_id,omitempty"`
	Message    string    `json:"message"`
	Resolved   bool      `json:"resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateContractRequest struct {
	PropertyID    string    `json:"property_id" binding:"required"`
	TenantID      string    `json:"tenant_id" binding:"required"`
	OwnerID       string    `json:"owner_id" binding:"required"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	MonthlyRent   float64   `json:"monthly_rent" binding:"required"`
	Deposit       float64   `json:"deposit"`
	PaymentDueDay int       `json:"payment_due_day"`
	Terms         string    `json:"terms"`
}

type UpdateContractRequest struct {
	StartDate     *time.Time     `json:"start_date"`
	EndDate       *time.Time     `json:"end_date"`
	MonthlyRent   *float64       `json:"monthly_rent"`
	Deposit       *float64       `json:"deposit"`
	Status        ContractStatus `json:"status"`
	PaymentDueDay *int           `json:"payment_due_day"`
	Terms         *string        `json:"terms"`
}

type CreatePaymentRequest struct {
	Amount  float64   `json:"amount" binding:"required"`
	DueDate time.Time `json:"due_date" binding:"required"`
	LateFee float64   `json:"late_fee"`
}

type MarkPaidRequest struct {
	PaidDate      *time.Time `json:"paid_date"`
	Method        string     `json:"method"`
	ReceiptNumber string     `json:"receipt_number"`
}

type PaymentFilter struct {
	ContractID string        `form:"contract_id"`
	Status     PaymentStatus `form:"status"`
	DueFrom    *time.Time    `form:"due_from" time_format:"2006-01-02"`
	DueTo      *time.Time    `form:"due_to" time_format:"2006-01-02"`
}

type ContractFilter struct {
	PropertyID string         `form:"property_id"`
	TenantID   string         `form:"tenant_id"`
	OwnerID    string         `form:"owner_id"`
	Status     ContractStatus `form:"status"`
}
