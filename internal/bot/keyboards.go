package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/dongibot/core/telegram/keyboard"
	"github.com/m3rciful/dongibot/internal/models"
)

// Callback keys. Telebot prefixes the wire data with "\f<unique>|<payload>".
const (
	cbMenuAdd      = "menu_add"
	cbMenuReport   = "menu_report"
	cbMenuExpenses = "menu_expenses"
	cbMenuPeople   = "menu_people"
	cbMenuMain     = "menu_main"

	cbPeopleAddHint = "people_add_hint"
	cbPeopleDelHint = "people_del_hint"

	cbRecPayer  = "rec_payer"
	cbRecCancel = "rec_cancel"
)

func mainMenuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "💳 ثبت هزینه جدید", Unique: cbMenuAdd},
		{Text: "📊 مشاهده گزارش کامل", Unique: cbMenuReport},
		{Text: "🧾 لیست هزینه‌های من", Unique: cbMenuExpenses},
		{Text: "👥 مدیریت افراد", Unique: cbMenuPeople},
	})
}

func peopleMenuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "➕ افزودن فرد جدید", Unique: cbPeopleAddHint},
		{Text: "➖ حذف یک فرد", Unique: cbPeopleDelHint},
		{Text: "⬅️ بازگشت به منوی اصلی", Unique: cbMenuMain},
	})
}

func payerMarkup(people []models.Person) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(people)+1)
	for _, p := range people {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: p.Name, Unique: cbRecPayer, Data: p.Name},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{
		{Text: "❌ انصراف", Unique: cbRecCancel},
	})
	return keyboard.InlineButtonsRows(rows...)
}

// cancelMarkup keeps a lone cancel button under the mid-dialogue prompts.
func cancelMarkup() *tele.ReplyMarkup {
	return keyboard.SingleCancelMarkup(cbRecCancel, "", "❌ انصراف")
}
