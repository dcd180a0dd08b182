package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/dongibot/internal/models"
)

// Users persists the chats known to the bot.
type Users struct {
	db *sqlx.DB
}

// NewUsers returns a chat user repository bound to db.
func NewUsers(db *sqlx.DB) *Users {
	return &Users{db: db}
}

// Ensure registers a chat if it is not known yet. Reports whether a row
// was created. An already blocked chat stays blocked.
func (r *Users) Ensure(ctx context.Context, chatID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (chat_id) VALUES ($1) ON CONFLICT (chat_id) DO NOTHING`, chatID)
	if err != nil {
		return false, fmt.Errorf("users insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("users insert: %w", err)
	}
	return n > 0, nil
}

// List returns all known chats ordered by id.
func (r *Users) List(ctx context.Context) ([]models.ChatUser, error) {
	var users []models.ChatUser
	if err := r.db.SelectContext(ctx, &users,
		`SELECT chat_id, is_blocked FROM users ORDER BY chat_id`); err != nil {
		return nil, fmt.Errorf("users select: %w", err)
	}
	return users, nil
}

// IsBlocked reports whether a chat is blocked. Unknown chats are not blocked.
func (r *Users) IsBlocked(ctx context.Context, chatID int64) (bool, error) {
	var blocked bool
	err := r.db.GetContext(ctx, &blocked,
		`SELECT is_blocked FROM users WHERE chat_id = $1`, chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("users select: %w", err)
	}
	return blocked, nil
}

// SetBlocked flips the moderation flag. Returns ErrNotFound for unknown chats.
func (r *Users) SetBlocked(ctx context.Context, chatID int64, blocked bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_blocked = $2 WHERE chat_id = $1`, chatID, blocked)
	if err != nil {
		return fmt.Errorf("users update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("users update: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete forgets a chat entirely, used when Telegram reports it unreachable.
func (r *Users) Delete(ctx context.Context, chatID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("users delete: %w", err)
	}
	return nil
}
