package service

import (
	"context"
	"errors"
	"testing"
)

func TestUsersRegisterIsIdempotent(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewUsers(store)
	ctx := context.Background()

	if err := svc.Register(ctx, 42); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Register(ctx, 42); err != nil {
		t.Fatalf("second register: %v", err)
	}

	users, _ := svc.List(ctx)
	if len(users) != 1 {
		t.Fatalf("users = %d, want 1", len(users))
	}
}

func TestUsersModeration(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewUsers(store)
	ctx := context.Background()

	if err := svc.SetBlocked(ctx, 7, true); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown chat: got %v, want ErrUserNotFound", err)
	}

	if err := svc.Register(ctx, 7); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.SetBlocked(ctx, 7, true); err != nil {
		t.Fatalf("block: %v", err)
	}
	blocked, err := svc.IsBlocked(ctx, 7)
	if err != nil || !blocked {
		t.Fatalf("IsBlocked = %v, %v; want true", blocked, err)
	}

	if err := svc.SetBlocked(ctx, 7, false); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if blocked, _ := svc.IsBlocked(ctx, 7); blocked {
		t.Fatal("chat still blocked after unblock")
	}

	// chats never seen are simply not blocked
	if blocked, err := svc.IsBlocked(ctx, 999); err != nil || blocked {
		t.Fatalf("unseen chat: IsBlocked = %v, %v", blocked, err)
	}
}
