package bot

import (
	tele "gopkg.in/telebot.v4"

	tg "github.com/m3rciful/dongibot/core/telegram"
	"github.com/m3rciful/dongibot/core/telegram/commands"
)

func (a *App) registerCommands(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "شروع کار با ربات",
	})
	reg.RegisterCommand("/menu", commands.Command{
		Handler:     a.handleMenu,
		Description: "نمایش منوی اصلی",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "راهنمای دستورات",
	})
	reg.RegisterCommand("/report", commands.Command{
		Handler:     a.handleReport,
		Description: "گزارش کامل دنگ‌ها",
	})
	reg.RegisterCommand("/expenses", commands.Command{
		Handler:     a.handleExpenses,
		Description: "لیست هزینه‌های ثبت شده",
		Aliases:     []string{"/myexpenses"},
	})
	reg.RegisterCommand("/addperson", commands.Command{
		Handler:     a.handleAddPerson,
		Description: "افزودن فرد جدید",
	})
	reg.RegisterCommand("/delperson", commands.Command{
		Handler:     a.handleDelPerson,
		Description: "حذف یک فرد",
	})
	reg.RegisterCommand("/delete", commands.Command{
		Handler:     a.handleDeleteExpense,
		Description: "حذف یک هزینه با ID",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.handleCancel,
		Description: "لغو عملیات جاری",
	})

	reg.RegisterCommand("/users", commands.Command{
		Handler:     a.handleUsers,
		Description: "لیست چت‌های ثبت شده",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/block", commands.Command{
		Handler:     a.handleBlock,
		Description: "مسدود کردن یک چت",
		AdminOnly:   true,
		Hidden:      true,
	})
	reg.RegisterCommand("/unblock", commands.Command{
		Handler:     a.handleUnblock,
		Description: "آزاد کردن یک چت",
		AdminOnly:   true,
		Hidden:      true,
	})
}

func (a *App) registerCallbacks(reg *tg.Registry) {
	cbs := map[string]tele.HandlerFunc{
		cbMenuAdd:       a.handleRecordBegin,
		cbMenuReport:    a.handleReport,
		cbMenuExpenses:  a.handleExpenses,
		cbMenuPeople:    a.handlePeopleMenu,
		cbMenuMain:      a.handleMenu,
		cbPeopleAddHint: a.handleAddPersonHint,
		cbPeopleDelHint: a.handleDelPersonHint,
		cbRecPayer:      a.handlePayerSelected,
		cbRecCancel:     a.handleRecordCancelButton,
	}
	for key, h := range cbs {
		_ = reg.RegisterCallback(key, h)
	}
}
