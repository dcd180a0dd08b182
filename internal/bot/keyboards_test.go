package bot

import (
	"testing"

	"github.com/m3rciful/dongibot/internal/models"
)

func TestPayerMarkupEndsWithCancelRow(t *testing.T) {
	people := []models.Person{{ID: 1, Name: "Ali"}, {ID: 2, Name: "Reza"}}

	m := payerMarkup(people)
	if len(m.InlineKeyboard) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(m.InlineKeyboard))
	}
	for i, p := range people {
		btn := m.InlineKeyboard[i][0]
		if btn.Unique != cbRecPayer || btn.Data != p.Name {
			t.Fatalf("row %d = (%q, %q), want (%q, %q)", i, btn.Unique, btn.Data, cbRecPayer, p.Name)
		}
	}
	if last := m.InlineKeyboard[2][0]; last.Unique != cbRecCancel {
		t.Fatalf("last row unique = %q, want %q", last.Unique, cbRecCancel)
	}
}

func TestCancelMarkupRoutesToRecordCancel(t *testing.T) {
	m := cancelMarkup()
	if len(m.InlineKeyboard) != 1 || len(m.InlineKeyboard[0]) != 1 {
		t.Fatalf("expected a single button, got %v", m.InlineKeyboard)
	}
	btn := m.InlineKeyboard[0][0]
	if btn.Unique != cbRecCancel {
		t.Fatalf("unique = %q, want %q", btn.Unique, cbRecCancel)
	}
	if btn.Text != "❌ انصراف" {
		t.Fatalf("unexpected label %q", btn.Text)
	}
}
