package middleware

import (
	"context"
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"
)

// stubContext implements the slice of tele.Context the middlewares touch.
type stubContext struct {
	tele.Context
	chat   *tele.Chat
	sender *tele.User
	store  map[string]interface{}
	sent   int
}

func newStubContext(chatID, userID int64) *stubContext {
	return &stubContext{
		chat:   &tele.Chat{ID: chatID},
		sender: &tele.User{ID: userID},
		store:  map[string]interface{}{},
	}
}

func (c *stubContext) Chat() *tele.Chat       { return c.chat }
func (c *stubContext) Sender() *tele.User     { return c.sender }
func (c *stubContext) Update() tele.Update    { return tele.Update{ID: 1} }
func (c *stubContext) Get(key string) interface{} { return c.store[key] }
func (c *stubContext) Set(key string, val interface{}) { c.store[key] = val }

func (c *stubContext) Send(what interface{}, opts ...interface{}) error {
	c.sent++
	return nil
}

type stubChecker struct {
	blocked map[int64]bool
	err     error
}

func (s *stubChecker) IsBlocked(_ context.Context, chatID int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.blocked[chatID], nil
}

func TestBlocklistDropsBlockedChatSilently(t *testing.T) {
	called := false
	next := func(c tele.Context) error {
		called = true
		return c.Send("reply")
	}
	h := BlocklistMiddleware(&stubChecker{blocked: map[int64]bool{7: true}})(next)

	c := newStubContext(7, 7)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatal("handler ran for a blocked chat")
	}
	if c.sent != 0 {
		t.Fatalf("blocked chat received %d replies, want none", c.sent)
	}
}

func TestBlocklistPassesUnblockedChat(t *testing.T) {
	called := false
	next := func(c tele.Context) error {
		called = true
		return c.Send("reply")
	}
	h := BlocklistMiddleware(&stubChecker{blocked: map[int64]bool{7: true}})(next)

	c := newStubContext(8, 8)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || c.sent != 1 {
		t.Fatalf("handler called=%v sent=%d, want true/1", called, c.sent)
	}
}

func TestBlocklistFailsOpenOnLookupError(t *testing.T) {
	called := false
	next := func(c tele.Context) error {
		called = true
		return nil
	}
	h := BlocklistMiddleware(&stubChecker{err: errors.New("db down")})(next)

	if err := h(newStubContext(9, 9)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("lookup failure should not mute the bot")
	}
}

func TestBlocklistNilCheckerPassesThrough(t *testing.T) {
	called := false
	h := BlocklistMiddleware(nil)(func(c tele.Context) error {
		called = true
		return nil
	})
	if err := h(newStubContext(1, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("nil checker should pass updates through")
	}
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	rejected := false
	h := AdminOnlyMiddleware(AdminOptions{
		AdminID: 1,
		OnReject: func(c tele.Context) error {
			rejected = true
			return nil
		},
	})(func(c tele.Context) error {
		t.Fatal("handler ran for a non-admin")
		return nil
	})

	if err := h(newStubContext(5, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rejected {
		t.Fatal("reject handler not invoked")
	}
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	called := false
	h := AdminOnlyMiddleware(AdminOptions{AdminID: 1})(func(c tele.Context) error {
		called = true
		return nil
	})

	if err := h(newStubContext(1, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("admin should reach the handler")
	}
}
