package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/dongibot/core/telegram/format"
	tghelpers "github.com/m3rciful/dongibot/core/telegram/helpers"
	"github.com/m3rciful/dongibot/internal/service"
)

func (a *App) handleReport(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	people, err := a.people.List(ctx)
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}
	expenses, err := a.expenses.List(ctx)
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}

	report, err := service.Settle(people, expenses)
	if errors.Is(err, service.ErrNoPeople) {
		return tghelpers.SendMD(c, msgNoPeople)
	}
	if errors.Is(err, service.ErrNoExpenses) {
		return tghelpers.SendMD(c, msgNoExpenses)
	}
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}

	return tghelpers.SendMD(c, renderReport(report))
}

func (a *App) handleExpenses(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	expenses, err := a.expenses.List(ctx)
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}
	if len(expenses) == 0 {
		return tghelpers.SendMD(c, msgNoExpenses)
	}
	return tghelpers.SendMD(c, renderExpenses(expenses))
}

func (a *App) handleDeleteExpense(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	payload := strings.TrimSpace(c.Message().Payload)
	if payload == "" {
		return tghelpers.SendMD(c, msgIDRequired)
	}
	id, err := strconv.ParseInt(strings.Fields(payload)[0], 10, 64)
	if err != nil {
		return tghelpers.SendMD(c, msgIDMustBeNumber)
	}

	err = a.expenses.Delete(ctx, id)
	if errors.Is(err, service.ErrExpenseNotFound) {
		return tghelpers.SendMD(c, msgExpenseMissing)
	}
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}

	a.notifier.Broadcast(ctx, chatID(c), fmt.Sprintf(msgNotifyDeleted, id))
	return tghelpers.SendMD(c, fmt.Sprintf(msgExpenseDeleted, id))
}

func (a *App) handleAddPerson(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	name := firstArg(c)
	if name == "" {
		return tghelpers.SendMD(c, msgNameRequired)
	}

	p, err := a.people.Add(ctx, name)
	if errors.Is(err, service.ErrDuplicateName) {
		return tghelpers.SendMD(c, fmt.Sprintf(msgPersonExists, format.EscapeMarkdown(name)))
	}
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}
	return tghelpers.SendMD(c, fmt.Sprintf(msgPersonAdded, format.EscapeMarkdown(p.Name)))
}

func (a *App) handleDelPerson(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	name := firstArg(c)
	if name == "" {
		return tghelpers.SendMD(c, msgNameRequired)
	}

	err := a.people.Remove(ctx, name)
	if errors.Is(err, service.ErrPersonNotFound) {
		return tghelpers.SendMD(c, fmt.Sprintf(msgPersonMissing, format.EscapeMarkdown(name)))
	}
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}
	return tghelpers.SendMD(c, fmt.Sprintf(msgPersonRemoved, format.EscapeMarkdown(name)))
}

func firstArg(c tele.Context) string {
	msg := c.Message()
	if msg == nil {
		return ""
	}
	fields := strings.Fields(msg.Payload)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func chatID(c tele.Context) int64 {
	if ch := c.Chat(); ch != nil {
		return ch.ID
	}
	return 0
}
