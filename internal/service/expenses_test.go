package service

import (
	"context"
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.5", 12.5, false},
		{" 40 ", 40, false},
		{"abc", 0, true},
		{"", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q): got err %v, want ErrInvalidAmount", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestExpensesRecord(t *testing.T) {
	svc := NewExpenses(&fakeExpenseStore{})
	ctx := context.Background()

	e, err := svc.Record(ctx, " Ali ", 100, " dinner ")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if e.ID != 1 || e.PayerName != "Ali" || e.Description != "dinner" {
		t.Fatalf("recorded = %+v", e)
	}

	if _, err := svc.Record(ctx, "", 100, ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("empty payer: got %v, want ErrEmptyName", err)
	}
	if _, err := svc.Record(ctx, "Ali", 0, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount: got %v, want ErrInvalidAmount", err)
	}
}

func TestExpensesDelete(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenses(store)
	ctx := context.Background()

	e, err := svc.Record(ctx, "Ali", 10, "x")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("missing: got %v, want ErrExpenseNotFound", err)
	}
}
