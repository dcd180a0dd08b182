package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m3rciful/dongibot/core/logger"
	"github.com/m3rciful/dongibot/internal/models"
	"github.com/m3rciful/dongibot/internal/repository"
)

// UserStore is the persistence surface the user registry needs.
type UserStore interface {
	Ensure(ctx context.Context, chatID int64) (bool, error)
	List(ctx context.Context) ([]models.ChatUser, error)
	IsBlocked(ctx context.Context, chatID int64) (bool, error)
	SetBlocked(ctx context.Context, chatID int64, blocked bool) error
	Delete(ctx context.Context, chatID int64) error
}

// Users tracks the chats the bot talks to and their moderation state.
type Users struct {
	store UserStore
}

// NewUsers wires a user registry over store.
func NewUsers(store UserStore) *Users {
	return &Users{store: store}
}

// Register makes sure a chat is known. Safe to call on every update.
func (s *Users) Register(ctx context.Context, chatID int64) error {
	created, err := s.store.Ensure(ctx, chatID)
	if err != nil {
		return err
	}
	if created {
		logger.Event(ctx, "service.users", slog.LevelInfo, "user.registered",
			slog.Int64("chat_id", chatID),
		)
	}
	return nil
}

// List returns all known chats.
func (s *Users) List(ctx context.Context) ([]models.ChatUser, error) {
	return s.store.List(ctx)
}

// IsBlocked reports whether a chat is silenced. Satisfies the blocklist
// middleware contract.
func (s *Users) IsBlocked(ctx context.Context, chatID int64) (bool, error) {
	return s.store.IsBlocked(ctx, chatID)
}

// SetBlocked flips a chat's moderation flag.
func (s *Users) SetBlocked(ctx context.Context, chatID int64, blocked bool) error {
	err := s.store.SetBlocked(ctx, chatID, blocked)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	logger.Event(ctx, "service.users", slog.LevelInfo, "user.moderated",
		slog.Int64("chat_id", chatID),
		slog.Bool("blocked", blocked),
	)
	return nil
}

// Forget drops a chat from the registry.
func (s *Users) Forget(ctx context.Context, chatID int64) error {
	return s.store.Delete(ctx, chatID)
}
