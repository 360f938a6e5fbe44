package rental

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aqarcrm/aqarcrm/internal/core/query"
	"github.com/aqarcrm/aqarcrm/internal/logging"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrAlertNotFound    = errors.New("alert not found")
	ErrValidation       = errors.New("rental validation failed")
)

// expiryWindow is how far ahead the alert sweep looks for ending contracts.
const expiryWindow = 60 * 24 * time.Hour

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateContract(req *CreateContractRequest) (Contract, error) {
	if !req.StartDate.Before(req.EndDate) {
		return Contract{}, fmt.Errorf("%w: start date must be before end date", ErrValidation)
	}
	if req.MonthlyRent <= 0 {
		return Contract{}, fmt.Errorf("%w: monthly rent must be positive", ErrValidation)
	}
	dueDay := req.PaymentDueDay
	if dueDay == 0 {
		dueDay = 1
	}
	if dueDay < 1 || dueDay > 28 {
		return Contract{}, fmt.Errorf("%w: payment due day must be between 1 and 28", ErrValidation)
	}

	now := time.Now()
	c := Contract{
		ID:            uuid.NewString(),
		PropertyID:    req.PropertyID,
		TenantID:      req.TenantID,
		OwnerID:       req.OwnerID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MonthlyRent:   req.MonthlyRent,
		Deposit:       req.Deposit,
		Status:        ContractActive,
		PaymentDueDay: dueDay,
		Terms:         req.Terms,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.repo.UpsertContract(c)
	return c, nil
}

func (s *Service) GetContract(id string) (Contract, error) {
	c, ok := s.repo.GetContract(id)
	if !ok {
		return Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (s *Service) ListContracts(f ContractFilter) []Contract {
	var out []Contract
	for _, c := range s.repo.AllContracts() {
		if !query.Equals(f.PropertyID, c.PropertyID) ||
			!query.Equals(f.TenantID, c.TenantID) ||
			!query.Equals(f.OwnerID, c.OwnerID) ||
			!query.Equals(string(f.Status), string(c.Status)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *Service) UpdateContract(id string, req *UpdateContractRequest) (Contract, error) {
	c, ok := s.repo.GetContract(id)
	if !ok {
		return Contract{}, ErrContractNotFound
	}

	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = *req.EndDate
	}
	if !c.StartDate.Before(c.EndDate) {
		return Contract{}, fmt.Errorf("%w: start date must be before end date", ErrValidation)
	}
	if req.MonthlyRent != nil {
		if *req.MonthlyRent <= 0 {
			return Contract{}, fmt.Errorf("%w: monthly rent must be positive", ErrValidation)
		}
		c.MonthlyRent = *req.MonthlyRent
	}
	if req.Deposit != nil {
		c.Deposit = *req.Deposit
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return Contract{}, fmt.Errorf("%w: unknown contract status %q", ErrValidation, req.Status)
		}
		c.Status = req.Status
	}
	if req.PaymentDueDay != nil {
		if *req.PaymentDueDay < 1 || *req.PaymentDueDay > 28 {
			return Contract{}, fmt.Errorf("%w: payment due day must be between 1 and 28", ErrValidation)
		}
		c.PaymentDueDay = *req.PaymentDueDay
	}
	if req.Terms != nil {
		c.Terms = *req.Terms
	}

	c.UpdatedAt = time.Now()
	s.repo.UpsertContract(c)
	return c, nil
}

func (s *Service) DeleteContract(id string) error {
	if !s.repo.DeleteContract(id) {
		return ErrContractNotFound
	}
	return nil
}

func (s *Service) CreatePayment(contractID string, req *CreatePaymentRequest) (Payment, error) {
	if _, ok := s.repo.GetContract(contractID); !ok {
		return Payment{}, ErrContractNotFound
	}
	if req.Amount <= 0 {
		return Payment{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	now := time.Now()
	p := Payment{
		ID:         uuid.NewString(),
		ContractID: contractID,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
		Status:     PaymentPending,
		LateFee:    req.LateFee,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.repo.UpsertPayment(p)
	return p, nil
}

func (s *Service) ListPayments(f PaymentFilter) []Payment {
	var out []Payment
	for _, p := range s.repo.AllPayments() {
		if !query.Equals(f.ContractID, p.ContractID) {
			continue
		}
		if !query.Equals(string(f.Status), string(p.Status)) {
			continue
		}
		if f.DueFrom != nil && p.DueDate.Before(*f.DueFrom) {
			continue
		}
		if f.DueTo != nil && p.DueDate.After(*f.DueTo) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Service) MarkPaid(paymentID string, req *MarkPaidRequest) (Payment, error) {
	p, ok := s.repo.GetPayment(paymentID)
	if !ok {
		return Payment{}, ErrPaymentNotFound
	}
	if p.Status == PaymentCancelled {
		return Payment{}, fmt.Errorf("%w: cancelled payment cannot be marked paid", ErrValidation)
	}

	paid := time.Now()
	if req.PaidDate != nil {
		paid = *req.PaidDate
	}
	p.PaidDate = &paid
	p.Status = PaymentPaid
	if paid.After(p.DueDate) {
		p.Status = PaymentLate
	}
	p.Method = req.Method
	p.ReceiptNumber = req.ReceiptNumber
	p.UpdatedAt = time.Now()
	s.repo.UpsertPayment(p)
	return p, nil
}

func (s *Service) CancelPayment(paymentID string) (Payment, error) {
	p, ok := s.repo.GetPayment(paymentID)
	if !ok {
		return Payment{}, ErrPaymentNotFound
	}
	p.Status = PaymentCancelled
	p.UpdatedAt = time.Now()
	s.repo.UpsertPayment(p)
	return p, nil
}

func (s *Service) ListAlerts(includeResolved bool) []Alert {
	if includeResolved {
		return s.repo.AllAlerts()
	}
	var out []Alert
	for _, a := range s.repo.AllAlerts() {
		if !a.Resolved {
			out = append(out, a)
		}
	}
	return out
}

func (s *Service) ResolveAlert(id string) (Alert, error) {
	a, ok := s.repo.GetAlert(id)
	if !ok {
		return Alert{}, ErrAlertNotFound
	}
	a.Resolved = true
	s.repo.UpsertAlert(a)
	return a, nil
}

// GenerateAlerts sweeps payments and contracts: pending payments past their
// due date become overdue and raise an alert, active contracts ending within
// the expiry window raise an alert. Generation is idempotent — existing
// unresolved alerts for the same subject are not duplicated.
func (s *Service) GenerateAlerts(now time.Time) []Alert {
	var created []Alert

	for _, p := range s.repo.AllPayments() {
		if p.Status != PaymentPending || !p.DueDate.Before(now) {
			continue
		}
		p.Status = PaymentOverdue
		p.UpdatedAt = now
		s.repo.UpsertPayment(p)

		if s.repo.HasAlert(AlertPaymentOverdue, p.ContractID, p.ID) {
			continue
		}
		a := Alert{
			ID:         uuid.NewString(),
			Type:       AlertPaymentOverdue,
			ContractID: p.ContractID,
			PaymentID:  p.ID,
			Message:    fmt.Sprintf("payment of %.2f due %s is overdue", p.Amount, p.DueDate.Format("2006-01-02")),
			CreatedAt:  now,
		}
		s.repo.UpsertAlert(a)
		created = append(created, a)
	}

	for _, c := range s.repo.AllContracts() {
		if c.Status != ContractActive {
			continue
		}
		if c.EndDate.Before(now) {
			c.Status = ContractExpired
			c.UpdatedAt = now
			s.repo.UpsertContract(c)
			continue
		}
		if c.EndDate.Sub(now) > expiryWindow {
			continue
		}
		if s.repo.HasAlert(AlertContractExpiring, c.ID, "") {
			continue
		}
		a := Alert{
			ID:         uuid.NewString(),
			Type:       AlertContractExpiring,
			ContractID: c.ID,
			Message:    fmt.Sprintf("contract ends %s", c.EndDate.Format("2006-01-02")),
			CreatedAt:  now,
		}
		s.repo.UpsertAlert(a)
		created = append(created, a)
	}

	if len(created) > 0 {
		logging.Logger.Infof("rental: generated %d alert(s)", len(created))
	}
	return created
}

// PaidTotalBetween sums payments with a paid date inside [from, to).
func (s *Service) PaidTotalBetween(from, to time.Time) float64 {
	var total float64
	for _, p := range s.repo.AllPayments() {
		if p.PaidDate == nil {
			continue
		}
		if p.PaidDate.Before(from) || !p.PaidDate.Before(to) {
			continue
		}
		total += p.Amount
	}
	return total
}

// OutstandingTotal sums pending, overdue and partial payment amounts.
func (s *Service) OutstandingTotal() float64 {
	var total float64
	for _, p := range s.repo.AllPayments() {
		switch p.Status {
		case PaymentPending, PaymentOverdue, PaymentPartial:
			total += p.Amount
		}
	}
	return total
}
