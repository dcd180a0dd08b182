package service

import (
	"context"
	"errors"
	"testing"
)

func TestPeopleAdd(t *testing.T) {
	svc := NewPeople(&fakePeopleStore{})
	ctx := context.Background()

	p, err := svc.Add(ctx, "  Reza ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.Name != "Reza" {
		t.Fatalf("name = %q, want trimmed Reza", p.Name)
	}

	if _, err := svc.Add(ctx, "Reza"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate: got %v, want ErrDuplicateName", err)
	}
	if _, err := svc.Add(ctx, "   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank: got %v, want ErrEmptyName", err)
	}
}

func TestPeopleRemove(t *testing.T) {
	store := &fakePeopleStore{}
	svc := NewPeople(store)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "Reza"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Remove(ctx, "Reza"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, "Reza"); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("missing: got %v, want ErrPersonNotFound", err)
	}
	if len(store.people) != 0 {
		t.Fatalf("store still has %d people", len(store.people))
	}
}

func TestPeopleSeedIsIdempotent(t *testing.T) {
	store := &fakePeopleStore{}
	svc := NewPeople(store)
	ctx := context.Background()

	defaults := []string{"Ali", "Reza", "", "Ali"}
	if err := svc.Seed(ctx, defaults); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.Seed(ctx, defaults); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	got, _ := svc.List(ctx)
	if len(got) != 2 {
		t.Fatalf("people after seeding = %d, want 2", len(got))
	}
}
