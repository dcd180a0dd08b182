package middleware

import (
	"context"

	"github.com/m3rciful/dongibot/core/logger"
	tghelpers "github.com/m3rciful/dongibot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// BlockChecker reports whether the given chat is blocked from using the bot.
// Unknown chats must return false.
type BlockChecker interface {
	IsBlocked(ctx context.Context, chatID int64) (bool, error)
}

// BlocklistMiddleware drops updates from blocked chats without responding.
// Lookup failures fail open so a storage hiccup does not mute the bot.
func BlocklistMiddleware(checker BlockChecker) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if checker == nil || chat == nil {
				return next(c)
			}

			ctx := tghelpers.BuildContext(c)
			blocked, err := checker.IsBlocked(ctx, chat.ID)
			if err != nil {
				logger.Warn(ctx, "tg", "blocklist.lookup",
					slog.String("status", "fail"),
					slog.Int64("chat_id", chat.ID),
					slog.String("err", err.Error()),
				)
				return next(c)
			}
			if blocked {
				logger.Debug(ctx, "tg", "blocklist.drop",
					slog.String("status", "skip"),
					slog.Int64("chat_id", chat.ID),
				)
				return nil
			}
			return next(c)
		}
	}
}
