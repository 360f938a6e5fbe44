package rental

import (
	"errors"
	"testing"
	"time"

	"github.com/aqarcrm/aqarcrm/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepository(storage.NewMemoryStore()))
}

func validContract() *CreateContractRequest {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &CreateContractRequest{
		PropertyID:  "prop-1",
		TenantID:    "tenant-1",
		OwnerID:     "owner-1",
		StartDate:   start,
		EndDate:     start.AddDate(1, 0, 0),
		MonthlyRent: 8500,
		Deposit:     17000,
	}
}

func TestCreateContractValidatesDates(t *testing.T) {
	svc := newTestService(t)

	req := validContract()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	if _, err := svc.CreateContract(req); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}

	req = validContract()
	req.EndDate = req.StartDate
	if _, err := svc.CreateContract(req); !errors.Is(err, ErrValidation) {
		t.Fatal("equal start and end dates should be rejected")
	}
}

func TestCreateContractDefaults(t *testing.T) {
	svc := newTestService(t)

	c, err := svc.CreateContract(validContract())
	if err != nil {
		t.Fatal(err)
	}
	if c.Status != ContractActive {
		t.Fatalf("got status %q, want active", c.Status)
	}
	if c.PaymentDueDay != 1 {
		t.Fatalf("got due day %d, want default 1", c.PaymentDueDay)
	}
}

func TestCreateContractRejectsBadDueDay(t *testing.T) {
	svc := newTestService(t)

	req := validContract()
	req.PaymentDueDay = 31
	if _, err := svc.CreateContract(req); !errors.Is(err, ErrValidation) {
		t.Fatal("due day past 28 should be rejected")
	}
}

func TestMarkPaidOnTimeAndLate(t *testing.T) {
	svc := newTestService(t)
	contract, _ := svc.CreateContract(validContract())

	due := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	onTime, _ := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 8500, DueDate: due})
	late, _ := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 8500, DueDate: due})

	early := due.AddDate(0, 0, -1)
	p, err := svc.MarkPaid(onTime.ID, &MarkPaidRequest{PaidDate: &early, Method: "cash"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != PaymentPaid {
		t.Fatalf("got %q, want paid", p.Status)
	}

	tardy := due.AddDate(0, 0, 3)
	p, err = svc.MarkPaid(late.ID, &MarkPaidRequest{PaidDate: &tardy})
	if err != nil {
		t.Fatal(err)
	}
	if p.Status != PaymentLate {
		t.Fatalf("got %q, want late", p.Status)
	}
}

func TestMarkPaidRejectsCancelled(t *testing.T) {
	svc := newTestService(t)
	contract, _ := svc.CreateContract(validContract())

	due := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	payment, _ := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 8500, DueDate: due})
	if _, err := svc.CancelPayment(payment.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.MarkPaid(payment.ID, &MarkPaidRequest{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestGenerateAlertsMarksOverdueAndExpires(t *testing.T) {
	svc := newTestService(t)
	contract, _ := svc.CreateContract(validContract())

	due := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	payment, _ := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 8500, DueDate: due})

	now := due.AddDate(0, 0, 10)
	created := svc.GenerateAlerts(now)
	if len(created) != 1 {
		t.Fatalf("got %d alerts, want 1", len(created))
	}
	if created[0].Type != AlertPaymentOverdue || created[0].PaymentID != payment.ID {
		t.Fatalf("unexpected alert %+v", created[0])
	}

	got, _ := svc.repo.GetPayment(payment.ID)
	if got.Status != PaymentOverdue {
		t.Fatalf("payment status %q, want overdue", got.Status)
	}

	// Past the contract end the sweep flips it to expired.
	afterEnd := contract.EndDate.AddDate(0, 0, 1)
	svc.GenerateAlerts(afterEnd)
	c, _ := svc.repo.GetContract(contract.ID)
	if c.Status != ContractExpired {
		t.Fatalf("contract status %q, want expired", c.Status)
	}
}

func TestGenerateAlertsIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	contract, _ := svc.CreateContract(validContract())

	due := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 8500, DueDate: due}); err != nil {
		t.Fatal(err)
	}

	now := due.AddDate(0, 0, 10)
	first := svc.GenerateAlerts(now)
	second := svc.GenerateAlerts(now.AddDate(0, 0, 1))
	if len(first) != 1 {
		t.Fatalf("first sweep created %d alerts, want 1", len(first))
	}
	if len(second) != 0 {
		t.Fatalf("second sweep created %d alerts, want 0", len(second))
	}
}

func TestGenerateAlertsExpiringContract(t *testing.T) {
	svc := newTestService(t)
	contract, _ := svc.CreateContract(validContract())

	// 30 days before the end date falls inside the 60 day expiry window.
	now := contract.EndDate.AddDate(0, 0, -30)
	created := svc.GenerateAlerts(now)
	if len(created) != 1 || created[0].Type != AlertContractExpiring {
		t.Fatalf("got %+v, want one contract_expiring alert", created)
	}
}

func TestPaidTotalBetween(t *testing.T) {
	svc := newTestService(t)
	contract, _ := svc.CreateContract(validContract())

	jan := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{jan, feb} {
		p, _ := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 8500, DueDate: d})
		paid := d
		if _, err := svc.MarkPaid(p.ID, &MarkPaidRequest{PaidDate: &paid}); err != nil {
			t.Fatal(err)
		}
	}

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := svc.PaidTotalBetween(from, to); got != 8500 {
		t.Fatalf("got %.2f, want 8500", got)
	}
}

func TestOutstandingTotal(t *testing.T) {
	svc := newTestService(t)
	contract, _ := svc.CreateContract(validContract())

	due := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 8500, DueDate: due}); err != nil {
		t.Fatal(err)
	}
	cancelled, _ := svc.CreatePayment(contract.ID, &CreatePaymentRequest{Amount: 1000, DueDate: due})
	if _, err := svc.CancelPayment(cancelled.ID); err != nil {
		t.Fatal(err)
	}

	if got := svc.OutstandingTotal(); got != 8500 {
		t.Fatalf("got %.2f, want 8500 (cancelled excluded)", got)
	}
}
