package service

import (
	"context"
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/dongibot/internal/models"
)

func TestBroadcastSkipsOriginAndBlocked(t *testing.T) {
	store := &fakeUserStore{users: []models.ChatUser{
		{ChatID: 1},
		{ChatID: 2, IsBlocked: true},
		{ChatID: 3},
	}}

	var sent []int64
	n := NewNotifier(NewUsers(store), func(_ context.Context, chatID int64, _ string) error {
		sent = append(sent, chatID)
		return nil
	})

	n.Broadcast(context.Background(), 1, "hi")

	if len(sent) != 1 || sent[0] != 3 {
		t.Fatalf("sent = %v, want [3]", sent)
	}
}

func TestBroadcastPrunesForbiddenRecipients(t *testing.T) {
	store := &fakeUserStore{users: []models.ChatUser{
		{ChatID: 1},
		{ChatID: 2},
		{ChatID: 3},
	}}

	var sent []int64
	n := NewNotifier(NewUsers(store), func(_ context.Context, chatID int64, _ string) error {
		sent = append(sent, chatID)
		if chatID == 2 {
			return &tele.Error{Code: 403, Description: "Forbidden: bot was blocked by the user"}
		}
		return nil
	})

	n.Broadcast(context.Background(), 0, "hi")

	if store.has(2) {
		t.Fatal("forbidden recipient was not pruned")
	}
	if !store.has(1) || !store.has(3) {
		t.Fatal("healthy recipients must survive the pass")
	}
	// the pass continues past the failing recipient
	if len(sent) != 3 {
		t.Fatalf("sent = %v, want all three attempted", sent)
	}
}

func TestBroadcastContinuesOnTransientFailure(t *testing.T) {
	store := &fakeUserStore{users: []models.ChatUser{
		{ChatID: 1},
		{ChatID: 2},
	}}

	var sent []int64
	n := NewNotifier(NewUsers(store), func(_ context.Context, chatID int64, _ string) error {
		sent = append(sent, chatID)
		if chatID == 1 {
			return errors.New("connection reset")
		}
		return nil
	})

	n.Broadcast(context.Background(), 0, "hi")

	if !store.has(1) {
		t.Fatal("transient failure must not prune the recipient")
	}
	if len(sent) != 2 {
		t.Fatalf("sent = %v, want both attempted", sent)
	}
}
