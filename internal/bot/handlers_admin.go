package bot

import (
	"errors"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/m3rciful/dongibot/core/telegram/helpers"
	"github.com/m3rciful/dongibot/internal/service"
)

func (a *App) handleUsers(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	users, err := a.users.List(ctx)
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}
	if len(users) == 0 {
		return tghelpers.SendMD(c, msgNoUsers)
	}
	return tghelpers.SendMD(c, renderUsers(users))
}

func (a *App) handleBlock(c tele.Context) error {
	return a.moderate(c, true, msgBlocked)
}

func (a *App) handleUnblock(c tele.Context) error {
	return a.moderate(c, false, msgUnblocked)
}

func (a *App) moderate(c tele.Context, blocked bool, okText string) error {
	ctx := tghelpers.BuildContext(c)

	arg := firstArg(c)
	if arg == "" {
		return tghelpers.SendMD(c, msgChatIDNumber)
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return tghelpers.SendMD(c, msgChatIDNumber)
	}

	err = a.users.SetBlocked(ctx, id, blocked)
	if errors.Is(err, service.ErrUserNotFound) {
		return tghelpers.SendMD(c, msgChatIDMissing)
	}
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}
	return tghelpers.SendMD(c, fmt.Sprintf(okText, id))
}
