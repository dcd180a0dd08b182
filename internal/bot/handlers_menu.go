package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/dongibot/core/telegram/format"
	tghelpers "github.com/m3rciful/dongibot/core/telegram/helpers"
)

func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if err := a.SeedDefaults(ctx); err != nil {
		return err
	}

	name := ""
	if s := c.Sender(); s != nil {
		name = s.FirstName
	}
	if err := tghelpers.SendMD(c, fmt.Sprintf(msgWelcome, format.EscapeMarkdown(name))); err != nil {
		return err
	}
	return tghelpers.SendMD(c, msgMenuPrompt, mainMenuMarkup())
}

// handleMenu serves both the /menu command and the back button. A button
// press edits the originating message in place.
func (a *App) handleMenu(c tele.Context) error {
	if c.Callback() != nil {
		return tghelpers.EditOrSendMD(c, msgMenuPrompt, mainMenuMarkup())
	}
	return tghelpers.SendMD(c, msgMenuPrompt, mainMenuMarkup())
}

func (a *App) handleHelp(c tele.Context) error {
	return tghelpers.SendMD(c, msgHelp)
}

func (a *App) handlePeopleMenu(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, msgPeopleMenu, peopleMenuMarkup())
}

func (a *App) handleAddPersonHint(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, msgAddPersonHint)
}

func (a *App) handleDelPersonHint(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, msgDelPersonHint)
}
