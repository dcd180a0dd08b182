package bot

import (
	"strings"
	"testing"

	"github.com/m3rciful/dongibot/internal/models"
	"github.com/m3rciful/dongibot/internal/service"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{40.4, "40"},
		{40.6, "41"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.in); got != tc.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderReport(t *testing.T) {
	out := renderReport(service.Report{
		Totals: []service.PersonTotal{
			{Name: "Ali", Total: 100},
			{Name: "Reza", Total: 40},
		},
		GrandTotal: 140,
		PayNext:    "Reza",
	})

	for _, want := range []string{"_Ali_: 100 تومان", "_Reza_: 40 تومان", "140 تومان", "نفر بعدی"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "_Ali_") > strings.Index(out, "_Reza_") {
		t.Error("totals are not rendered in descending order")
	}
}

func TestRenderExpenses(t *testing.T) {
	out := renderExpenses([]models.Expense{
		{ID: 3, PayerName: "Ali", Amount: 2500, Description: "شام"},
	})
	for _, want := range []string{"`ID: 3`", "Ali", "2,500", "شام", "/delete"} {
		if !strings.Contains(out, want) {
			t.Errorf("expense list missing %q:\n%s", want, out)
		}
	}
}
