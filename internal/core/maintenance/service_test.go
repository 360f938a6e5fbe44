package maintenance

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

func TestCreateDefaults(t *testing.T) {
	svc := newTestService(t)

	m, err := svc.Create(&CreateRequestRequest{
		PropertyID: "p1",
		Title:      "Leaking tap",
		Category:   CategoryPlumbing,
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.Priority != PriorityMedium {
		t.Fatalf("got priority %q, want medium", m.Priority)
	}
	if m.Status != StatusReported {
		t.Fatalf("got status %q, want reported", m.Status)
	}
	if m.ReportedAt.IsZero() {
		t.Fatal("reported timestamp not set")
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateRequestRequest{PropertyID: "p1", Title: "X", Category: Category("plasma")})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestSchedulingTransitionsStatus(t *testing.T) {
	svc := newTestService(t)
	m, _ := svc.Create(&CreateRequestRequest{PropertyID: "p1", Title: "Broken lock", Category: CategoryOther})

	when := time.Now().Add(48 * time.Hour)
	got, err := svc.Update(m.ID, &UpdateRequestRequest{ScheduledAt: &when})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusScheduled {
		t.Fatalf("got status %q, want scheduled", got.Status)
	}

	done := when.Add(2 * time.Hour)
	cost := 350.0
	got, err = svc.Update(m.ID, &UpdateRequestRequest{CompletedAt: &done, Cost: &cost})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("got status %q, want completed", got.Status)
	}
	if got.Cost != 350 {
		t.Fatalf("got cost %.2f, want 350", got.Cost)
	}
}

func TestUpdateRejectsNegativeCost(t *testing.T) {
	svc := newTestService(t)
	m, _ := svc.Create(&CreateRequestRequest{PropertyID: "p1", Title: "X", Category: CategoryOther})

	bad := -1.0
	if _, err := svc.Update(m.ID, &UpdateRequestRequest{Cost: &bad}); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestListFilters(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(&CreateRequestRequest{PropertyID: "p1", Title: "Leaking tap", Category: CategoryPlumbing}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(&CreateRequestRequest{PropertyID: "p2", Title: "Dead socket", Category: CategoryElectrical}); err != nil {
		t.Fatal(err)
	}

	if got := svc.List(Filter{PropertyID: "p1"}); len(got) != 1 || got[0].Title != "Leaking tap" {
		t.Fatalf("property filter: got %v", got)
	}
	if got := svc.List(Filter{Category: CategoryElectrical}); len(got) != 1 {
		t.Fatalf("category filter: got %d", len(got))
	}
	if got := svc.List(Filter{Search: "tap"}); len(got) != 1 {
		t.Fatalf("search filter: got %d", len(got))
	}
	if got := svc.List(Filter{}); len(got) != 2 {
		t.Fatalf("empty filter: got %d", len(got))
	}
}
