// Package service implements the ledger operations behind the bot handlers.
package service

// Error is a domain failure with a stable machine-readable code.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier for this failure.
func (e *Error) Code() string { return e.code }

var (
	// ErrDuplicateName means the person name is already taken.
	ErrDuplicateName = &Error{code: "DUPLICATE_NAME", msg: "person already exists"}
	// ErrPersonNotFound means no person matches the given name.
	ErrPersonNotFound = &Error{code: "PERSON_NOT_FOUND", msg: "person not found"}
	// ErrExpenseNotFound means no expense matches the given id.
	ErrExpenseNotFound = &Error{code: "EXPENSE_NOT_FOUND", msg: "expense not found"}
	// ErrUserNotFound means the chat is not registered.
	ErrUserNotFound = &Error{code: "USER_NOT_FOUND", msg: "chat not registered"}
	// ErrInvalidAmount means the amount is not a positive number.
	ErrInvalidAmount = &Error{code: "INVALID_AMOUNT", msg: "amount must be a positive number"}
	// ErrEmptyName means the person name is blank.
	ErrEmptyName = &Error{code: "EMPTY_NAME", msg: "name must not be empty"}
	// ErrNoPeople means the settlement has no participants yet.
	ErrNoPeople = &Error{code: "NO_PEOPLE", msg: "no people in the ledger"}
	// ErrNoExpenses means nothing has been spent yet.
	ErrNoExpenses = &Error{code: "NO_EXPENSES", msg: "no expenses recorded"}
)
