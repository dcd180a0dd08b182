// Package models holds the persistent shapes of the shared ledger.
package models

// Person is a ledger participant expenses can be attributed to.
type Person struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Expense is a single spend recorded against a person.
// PayerName is stored denormalized so a removed person keeps their history.
type Expense struct {
	ID          int64   `db:"id"`
	PayerName   string  `db:"payer_name"`
	Amount      float64 `db:"amount"`
	Description string  `db:"description"`
}

// ChatUser is a chat known to the bot, with its moderation flag.
type ChatUser struct {
	ChatID    int64 `db:"chat_id"`
	IsBlocked bool  `db:"is_blocked"`
}
