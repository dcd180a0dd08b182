package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/dongibot/core/telegram/callbacks"
	"github.com/m3rciful/dongibot/core/telegram/format"
	tghelpers "github.com/m3rciful/dongibot/core/telegram/helpers"
	"github.com/m3rciful/dongibot/internal/dialogue"
)

// handleRecordBegin enters the recording dialogue from the main menu.
func (a *App) handleRecordBegin(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	people, err := a.people.List(ctx)
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}
	if len(people) == 0 {
		return tghelpers.SendMD(c, msgNoPeople)
	}

	a.flow.Begin(senderID(c))
	return tghelpers.SendMD(c, msgAskPayer, payerMarkup(people))
}

// handlePayerSelected consumes the payer button press.
func (a *App) handlePayerSelected(c tele.Context) error {
	payer := callbacks.CallbackPayload(c)

	switch a.flow.SelectPayer(senderID(c), payer) {
	case dialogue.OutcomeAskAmount:
		return tghelpers.EditOrSendMD(c, fmt.Sprintf(msgAskAmount, format.EscapeMarkdown(payer)), cancelMarkup())
	case dialogue.OutcomeAskPayer:
		return tghelpers.SendMD(c, msgUseButtons)
	default:
		return tghelpers.EditOrSendMD(c, msgUnsupported)
	}
}

// onAwaitingPayerText runs when the user types instead of pressing a button.
func (a *App) onAwaitingPayerText(c tele.Context) error {
	return tghelpers.SendMD(c, msgUseButtons)
}

func (a *App) onAmountText(c tele.Context) error {
	switch a.flow.EnterAmount(senderID(c), c.Text()) {
	case dialogue.OutcomeAskDescription:
		return tghelpers.SendMD(c, msgAskDescription, cancelMarkup())
	case dialogue.OutcomeRetryAmount:
		return tghelpers.SendMD(c, msgRetryAmount, cancelMarkup())
	default:
		return nil
	}
}

func (a *App) onDescriptionText(c tele.Context) error {
	draft, outcome := a.flow.EnterDescription(senderID(c), c.Text())
	switch outcome {
	case dialogue.OutcomeCommitted:
		return a.commitDraft(c, draft)
	case dialogue.OutcomeCancelled:
		return tghelpers.SendMD(c, msgCancelled)
	default:
		return nil
	}
}

func (a *App) commitDraft(c tele.Context, draft dialogue.Draft) error {
	ctx := tghelpers.BuildContext(c)

	e, err := a.expenses.Record(ctx, draft.Payer, draft.Amount, draft.Description)
	if err != nil {
		_ = tghelpers.SendMD(c, msgInternal)
		return err
	}

	payer := format.EscapeMarkdown(e.PayerName)
	amount := formatAmount(e.Amount)
	desc := format.EscapeMarkdown(e.Description)

	a.notifier.Broadcast(ctx, chatID(c), fmt.Sprintf(msgNotifyRecorded, payer, amount, desc))

	if err := tghelpers.SendMD(c, fmt.Sprintf(msgRecorded, payer, amount, desc)); err != nil {
		return err
	}
	return tghelpers.SendMD(c, msgMenuPrompt, mainMenuMarkup())
}

// handleCancel serves the /cancel command.
func (a *App) handleCancel(c tele.Context) error {
	if a.flow.Cancel(senderID(c)) == dialogue.OutcomeIdle {
		return tghelpers.SendMD(c, msgNothingCancel)
	}
	if err := tghelpers.SendMD(c, msgCancelled); err != nil {
		return err
	}
	return tghelpers.SendMD(c, msgMenuPrompt, mainMenuMarkup())
}

// handleRecordCancelButton serves the cancel button under the payer keyboard.
func (a *App) handleRecordCancelButton(c tele.Context) error {
	if a.flow.Cancel(senderID(c)) == dialogue.OutcomeIdle {
		return tghelpers.EditOrSendMD(c, msgUnsupported)
	}
	return tghelpers.EditOrSendMD(c, msgCancelled, mainMenuMarkup())
}

func senderID(c tele.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}
