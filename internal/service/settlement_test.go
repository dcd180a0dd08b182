package service

import (
	"errors"
	"testing"

	"github.com/m3rciful/dongibot/internal/models"
)

func people(names ...string) []models.Person {
	out := make([]models.Person, len(names))
	for i, n := range names {
		out[i] = models.Person{ID: int64(i + 1), Name: n}
	}
	return out
}

func TestSettleBasic(t *testing.T) {
	report, err := Settle(
		people("Ali", "Reza"),
		[]models.Expense{
			{ID: 1, PayerName: "Ali", Amount: 100},
			{ID: 2, PayerName: "Reza", Amount: 40},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GrandTotal != 140 {
		t.Fatalf("grand total = %v, want 140", report.GrandTotal)
	}
	if report.PayNext != "Reza" {
		t.Fatalf("pay next = %q, want Reza", report.PayNext)
	}
	if len(report.Totals) != 2 {
		t.Fatalf("totals len = %d, want 2", len(report.Totals))
	}
	if report.Totals[0].Name != "Ali" || report.Totals[0].Total != 100 {
		t.Fatalf("totals[0] = %+v, want Ali/100", report.Totals[0])
	}
	if report.Totals[1].Name != "Reza" || report.Totals[1].Total != 40 {
		t.Fatalf("totals[1] = %+v, want Reza/40", report.Totals[1])
	}
}

func TestSettleEmptyInputs(t *testing.T) {
	if _, err := Settle(nil, []models.Expense{{PayerName: "Ali", Amount: 1}}); !errors.Is(err, ErrNoPeople) {
		t.Fatalf("no people: got %v, want ErrNoPeople", err)
	}
	if _, err := Settle(people("Ali"), nil); !errors.Is(err, ErrNoExpenses) {
		t.Fatalf("no expenses: got %v, want ErrNoExpenses", err)
	}
}

func TestSettleUnmatchedPayerCountsGrandOnly(t *testing.T) {
	report, err := Settle(
		people("Ali"),
		[]models.Expense{
			{ID: 1, PayerName: "Ali", Amount: 10},
			{ID: 2, PayerName: "Ghost", Amount: 5},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GrandTotal != 15 {
		t.Fatalf("grand total = %v, want 15", report.GrandTotal)
	}
	if report.Totals[0].Total != 10 {
		t.Fatalf("Ali total = %v, want 10", report.Totals[0].Total)
	}
}

func TestSettleTieBreakKeepsFirstPerson(t *testing.T) {
	report, err := Settle(
		people("Ali", "Reza", "Sara"),
		[]models.Expense{
			{ID: 1, PayerName: "Ali", Amount: 50},
			{ID: 2, PayerName: "Reza", Amount: 50},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Sara has the minimum; between equal Ali/Reza the earlier one leads.
	if report.PayNext != "Sara" {
		t.Fatalf("pay next = %q, want Sara", report.PayNext)
	}
	if report.Totals[0].Name != "Ali" || report.Totals[1].Name != "Reza" {
		t.Fatalf("tie order = %q,%q, want Ali,Reza", report.Totals[0].Name, report.Totals[1].Name)
	}

	report, err = Settle(
		people("Ali", "Reza"),
		[]models.Expense{
			{ID: 1, PayerName: "Ali", Amount: 50},
			{ID: 2, PayerName: "Reza", Amount: 50},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.PayNext != "Ali" {
		t.Fatalf("equal totals pay next = %q, want Ali", report.PayNext)
	}
}
