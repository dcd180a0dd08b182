package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/m3rciful/dongibot/core/telegram/format"
	"github.com/m3rciful/dongibot/internal/models"
	"github.com/m3rciful/dongibot/internal/service"
)

const (
	msgWelcome     = "سلام %s! 👋\nبه ربات مدیریت دنگ خوش آمدی."
	msgMenuPrompt  = "لطفاً یکی از گزینه‌های زیر را انتخاب کنید:"
	msgPeopleMenu  = "گزینه‌ای برای مدیریت افراد انتخاب کنید:"
	msgUnsupported = "این گزینه دیگر معتبر نیست. از /menu استفاده کنید."

	msgAddPersonHint = "برای افزودن فرد جدید، لطفاً دستور زیر را تایپ کنید:\n`/addperson <اسم>`\n\nمثال: `/addperson رضا`"
	msgDelPersonHint = "برای حذف یک فرد، لطفاً دستور زیر را تایپ کنید:\n`/delperson <اسم>`\n\nمثال: `/delperson علی`"

	msgNoPeople      = "هیچ فردی در لیست وجود ندارد! ابتدا با /addperson یک نفر را اضافه کنید."
	msgPersonAdded   = "✅ فرد جدید «%s» اضافه شد."
	msgPersonExists  = "«%s» از قبل در لیست وجود دارد."
	msgPersonRemoved = "🗑️ «%s» از لیست حذف شد."
	msgPersonMissing = "فردی با نام «%s» پیدا نشد."
	msgNameRequired  = "اسم را بعد از دستور بنویس. مثال: `/addperson رضا`"

	msgAskPayer       = "چه کسی هزینه کرده؟"
	msgAskAmount      = "پرداخت کننده: %s\n\nحالا مبلغ هزینه را به تومان وارد کن:"
	msgRetryAmount    = "لطفاً یک عدد معتبر برای مبلغ وارد کن."
	msgAskDescription = "عالی! حالا یک توضیح کوتاه برای هزینه بنویس (مثلا: شام):"
	msgRecorded       = "✅ هزینه ثبت شد:\nپرداخت کننده: %s\nمبلغ: %s تومان\nبابت: %s"
	msgCancelled      = "عملیات ثبت هزینه لغو شد."
	msgNothingCancel  = "عملیاتی برای لغو وجود ندارد."
	msgUseButtons     = "لطفاً پرداخت کننده را با دکمه‌ها انتخاب کن."

	msgNoExpenses     = "هنوز هیچ هزینه‌ای ثبت نشده است."
	msgExpenseDeleted = "✅ هزینه با ID %d حذف شد."
	msgExpenseMissing = "هزینه‌ای با این ID پیدا نشد."
	msgIDMustBeNumber = "ID باید یک عدد باشد."
	msgIDRequired     = "ID هزینه را بعد از دستور بنویس. مثال: `/delete 3`"

	msgNotifyRecorded = "📢 هزینه جدید ثبت شد:\nپرداخت کننده: %s\nمبلغ: %s تومان\nبابت: %s"
	msgNotifyDeleted  = "📢 هزینه با ID %d حذف شد."

	msgAdminOnly     = "⛔️ این دستور مخصوص مدیر ربات است."
	msgChatIDNumber  = "chat_id باید یک عدد باشد."
	msgChatIDMissing = "چتی با این شناسه ثبت نشده است."
	msgBlocked       = "🔇 چت %d مسدود شد."
	msgUnblocked     = "🔊 چت %d آزاد شد."
	msgNoUsers       = "هنوز هیچ چتی ثبت نشده است."

	msgInternal = "مشکلی پیش آمد، کمی بعد دوباره تلاش کن."
)

const msgHelp = `*راهنمای ربات دنگ* 🤝

/menu نمایش منوی اصلی
/report گزارش کامل دنگ‌ها
/expenses لیست هزینه‌های ثبت شده
/addperson <اسم> افزودن فرد جدید
/delperson <اسم> حذف یک فرد
/delete <ID> حذف یک هزینه
/cancel لغو عملیات جاری`

// formatAmount renders an amount the way users expect: rounded to whole
// toman with thousands separators.
func formatAmount(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func renderReport(r service.Report) string {
	var b strings.Builder
	b.WriteString("📊 *گزارش کامل دنگ‌ها* 📊\n\n")
	b.WriteString("*جمع هزینه‌های هر فرد:*\n")
	for _, row := range r.Totals {
		fmt.Fprintf(&b, "- _%s_: %s تومان\n", format.EscapeMarkdown(row.Name), formatAmount(row.Total))
	}
	fmt.Fprintf(&b, "\n💰 *مجموع کل هزینه‌ها:* %s تومان\n", formatAmount(r.GrandTotal))
	fmt.Fprintf(&b, "\n👇 *نفر بعدی برای پرداخت:*\n_%s_ (کمترین هزینه را داشته است)", format.EscapeMarkdown(r.PayNext))
	return b.String()
}

func renderExpenses(expenses []models.Expense) string {
	var b strings.Builder
	b.WriteString("*لیست تمام هزینه‌های ثبت شده:*\n\n")
	for _, e := range expenses {
		fmt.Fprintf(&b, "`ID: %d` | %s | %s | %s\n",
			e.ID,
			format.EscapeMarkdown(e.PayerName),
			formatAmount(e.Amount),
			format.EscapeMarkdown(e.Description),
		)
	}
	b.WriteString("\nبرای حذف، از دستور `/delete ID` استفاده کنید.")
	return b.String()
}

func renderUsers(users []models.ChatUser) string {
	var b strings.Builder
	b.WriteString("*چت‌های ثبت شده:*\n\n")
	for _, u := range users {
		flag := "🔊"
		if u.IsBlocked {
			flag = "🔇"
		}
		fmt.Fprintf(&b, "%s `%d`\n", flag, u.ChatID)
	}
	return b.String()
}
