package service

import (
	"context"
	"errors"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/dongibot/core/logger"
)

// SendFunc delivers one text message to a chat.
type SendFunc func(ctx context.Context, chatID int64, text string) error

// Notifier fans ledger events out to every known chat.
type Notifier struct {
	users *Users
	send  SendFunc
}

// NewNotifier wires a notifier over the user registry and a delivery func.
func NewNotifier(users *Users, send SendFunc) *Notifier {
	return &Notifier{users: users, send: send}
}

// Broadcast delivers text to every known chat except the originator and
// blocked chats. A chat that permanently rejects delivery is forgotten on
// the spot; any other failure is logged and the pass continues. Delivery
// errors never reach the caller.
func (n *Notifier) Broadcast(ctx context.Context, originChatID int64, text string) {
	users, err := n.users.List(ctx)
	if err != nil {
		logger.Event(ctx, "service.notify", slog.LevelError, "broadcast.list_failed",
			slog.String("err", err.Error()),
		)
		return
	}

	delivered, pruned := 0, 0
	for _, u := range users {
		if u.ChatID == originChatID || u.IsBlocked {
			continue
		}

		if err := n.send(ctx, u.ChatID, text); err != nil {
			if isForbidden(err) {
				if delErr := n.users.Forget(ctx, u.ChatID); delErr != nil {
					logger.Event(ctx, "service.notify", slog.LevelError, "broadcast.prune_failed",
						slog.Int64("chat_id", u.ChatID),
						slog.String("err", delErr.Error()),
					)
					continue
				}
				pruned++
				logger.Event(ctx, "service.notify", slog.LevelInfo, "broadcast.pruned",
					slog.Int64("chat_id", u.ChatID),
				)
				continue
			}
			logger.Event(ctx, "service.notify", slog.LevelWarn, "broadcast.delivery_failed",
				slog.Int64("chat_id", u.ChatID),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
			continue
		}
		delivered++
	}

	logger.Event(ctx, "service.notify", slog.LevelInfo, "broadcast.done",
		slog.Int("recipients", len(users)),
		slog.Int("delivered", delivered),
		slog.Int("pruned", pruned),
	)
}

// isForbidden reports whether Telegram permanently refused the chat,
// typically because the user blocked the bot.
func isForbidden(err error) bool {
	var teleErr *tele.Error
	if errors.As(err, &teleErr) {
		return teleErr.Code == 403
	}
	return false
}
