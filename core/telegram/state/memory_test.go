package state

import "testing"

func TestMemoryManagerStates(t *testing.T) {
	m := NewMemoryManager()

	if m.GetState(1) != StateIdle {
		t.Fatal("fresh user should be idle")
	}
	if m.InProgress(1) {
		t.Fatal("fresh user should not be in progress")
	}

	m.SetState(1, State("awaiting_amount"))
	if !m.HasState(1) {
		t.Fatal("expected active state")
	}
	if m.GetState(1) != State("awaiting_amount") {
		t.Fatalf("state = %s", m.GetState(1))
	}
	// Another user stays independent.
	if m.HasState(2) {
		t.Fatal("user 2 should be idle")
	}

	m.ClearState(1)
	if m.GetState(1) != StateIdle {
		t.Fatal("state should reset to idle")
	}
}

func TestMemoryManagerTempData(t *testing.T) {
	m := NewMemoryManager()

	m.SetTemp(7, "payer_name", "Ali")
	m.SetTemp(7, "amount", 12.5)

	if got, ok := m.GetTempString(7, "payer_name"); !ok || got != "Ali" {
		t.Fatalf("payer_name = %q, ok=%v", got, ok)
	}
	if got, ok := m.GetTempFloat64(7, "amount"); !ok || got != 12.5 {
		t.Fatalf("amount = %v, ok=%v", got, ok)
	}
	if _, ok := m.GetTempString(7, "amount"); ok {
		t.Fatal("string assertion on float should fail")
	}

	m.ClearTemp(7, "payer_name")
	if _, ok := m.GetTemp(7, "payer_name"); ok {
		t.Fatal("payer_name should be cleared")
	}

	m.Clear(7)
	if _, ok := m.GetTemp(7, "amount"); ok {
		t.Fatal("session should be fully cleared")
	}
	if m.GetState(7) != StateIdle {
		t.Fatal("cleared session should read as idle")
	}
}
