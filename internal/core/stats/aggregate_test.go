package stats

import (
	"math"
	"testing"
)

type record struct {
	status string
	amount float64
}

func TestCountByPreservesTotal(t *testing.T) {
	items := []record{
		{status: "available"},
		{status: "available"},
		{status: "rented"},
		{status: "sold"},
	}

	counts := CountBy(items, func(r record) string { return r.status })

	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != len(items) {
		t.Fatalf("counts sum to %d, want %d", sum, len(items))
	}
	if counts["available"] != 2 {
		t.Fatalf("available: got %d, want 2", counts["available"])
	}
}

func TestSumBy(t *testing.T) {
	items := []record{
		{status: "paid", amount: 8500},
		{status: "paid", amount: 4200},
		{status: "pending", amount: 1000},
	}

	sums := SumBy(items, func(r record) string { return r.status }, func(r record) float64 { return r.amount })
	if sums["paid"] != 12700 {
		t.Fatalf("paid: got %.2f, want 12700", sums["paid"])
	}
	if sums["pending"] != 1000 {
		t.Fatalf("pending: got %.2f, want 1000", sums["pending"])
	}
}

func TestPercentBySumsToHundred(t *testing.T) {
	items := []record{
		{status: "a"}, {status: "a"}, {status: "b"}, {status: "c"},
	}

	pcts := PercentBy(items, func(r record) string { return r.status })

	var total float64
	for _, p := range pcts {
		total += p
	}
	if math.Abs(total-100) > 1e-9 {
		t.Fatalf("percentages sum to %.4f, want 100", total)
	}
	if pcts["a"] != 50 {
		t.Fatalf("a: got %.2f, want 50", pcts["a"])
	}
}

func TestPercentByEmptyInput(t *testing.T) {
	pcts := PercentBy(nil, func(r record) string { return r.status })
	if len(pcts) != 0 {
		t.Fatalf("got %d groups from empty input", len(pcts))
	}
	for k, p := range pcts {
		if math.IsNaN(p) {
			t.Fatalf("group %s is NaN", k)
		}
	}
}
