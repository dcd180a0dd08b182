// Package bot wires the ledger services to Telegram handlers.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/dongibot/core/logger"
	tg "github.com/m3rciful/dongibot/core/telegram"
	tghelpers "github.com/m3rciful/dongibot/core/telegram/helpers"
	"github.com/m3rciful/dongibot/core/telegram/router"
	"github.com/m3rciful/dongibot/core/telegram/state"
	appconfig "github.com/m3rciful/dongibot/internal/config"
	"github.com/m3rciful/dongibot/internal/dialogue"
	"github.com/m3rciful/dongibot/internal/repository"
	"github.com/m3rciful/dongibot/internal/service"
)

// App composes the ledger services behind the Telegram surface.
type App struct {
	cfg *appconfig.Config

	people   *service.People
	expenses *service.Expenses
	users    *service.Users
	notifier *service.Notifier

	states state.Manager
	flow   *dialogue.Flow

	bot atomic.Pointer[tele.Bot]
}

// New builds the application over an open database connection.
func New(cfg *appconfig.Config, db *sqlx.DB) *App {
	a := &App{
		cfg:    cfg,
		states: state.NewMemoryManager(),
	}

	a.people = service.NewPeople(repository.NewPeople(db))
	a.expenses = service.NewExpenses(repository.NewExpenses(db))
	a.users = service.NewUsers(repository.NewUsers(db))
	a.notifier = service.NewNotifier(a.users, a.deliver)
	a.flow = dialogue.NewFlow(a.states)

	state.RegisterHandler(dialogue.StateAwaitingPayer, a.onAwaitingPayerText)
	state.RegisterHandler(dialogue.StateAwaitingAmount, a.onAmountText)
	state.RegisterHandler(dialogue.StateAwaitingDescription, a.onDescriptionText)

	return a
}

// SeedDefaults registers the configured default participants.
func (a *App) SeedDefaults(ctx context.Context) error {
	return a.people.Seed(ctx, a.cfg.Bot.DefaultPeople)
}

var errBotNotRunning = errors.New("bot not running")

// deliver sends one broadcast message, used by the notifier.
func (a *App) deliver(ctx context.Context, chatID int64, text string) error {
	b := a.bot.Load()
	if b == nil {
		return errBotNotRunning
	}
	_, err := b.Send(tele.ChatID(chatID), text, tele.ModeMarkdown)
	return err
}

// TelegramRunOptions assembles the full bot runtime configuration.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := tg.NewRegistry()
	a.registerCommands(reg)
	a.registerCallbacks(reg)
	reg.SetCallbackNotFound(func(c tele.Context) error {
		return tghelpers.SendMD(c, msgUnsupported)
	})

	core := a.cfg.CoreConfig()

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: core.Telegram.AdminID,
		OnAdminReject: func(c tele.Context) error {
			return tghelpers.SendMD(c, msgAdminOnly)
		},
	})
	routes = append(routes,
		router.CallbackRoute(reg),
		router.TextRoute(a.states, reg),
	)

	base := tg.DefaultMiddlewares(core, a.users)
	mws := make([]tg.Middleware, 0, len(base)+1)
	for _, m := range base {
		if m.Name == "blocklist" {
			mws = append(mws, tg.Middleware{Name: "register", Use: a.registerChat})
		}
		mws = append(mws, m)
	}

	return tg.RunOptions{
		Config:      core,
		Registry:    reg,
		Middlewares: mws,
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			a.bot.Store(rt.Bot)
			return nil
		},
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			a.bot.Store(nil)
			return nil
		},
	}, nil
}

// registerChat makes every chat that talks to the bot known to the registry
// before moderation checks run. Registration failure never drops the update.
func (a *App) registerChat(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if ch := c.Chat(); ch != nil {
			ctx := tghelpers.BuildContext(c)
			if err := a.users.Register(ctx, ch.ID); err != nil {
				logger.Event(ctx, "service.users", slog.LevelWarn, "user.register_failed",
					slog.Int64("chat_id", ch.ID),
					slog.String("err", err.Error()),
				)
			}
		}
		return next(c)
	}
}
