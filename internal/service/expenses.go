package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m3rciful/dongibot/core/logger"
	"github.com/m3rciful/dongibot/internal/models"
	"github.com/m3rciful/dongibot/internal/repository"
)

// ExpenseStore is the persistence surface the expense service needs.
type ExpenseStore interface {
	Add(ctx context.Context, payerName string, amount float64, description string) (models.Expense, error)
	List(ctx context.Context) ([]models.Expense, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Expenses manages the recorded spends of the shared ledger.
type Expenses struct {
	store ExpenseStore
}

// NewExpenses wires an expense service over store.
func NewExpenses(store ExpenseStore) *Expenses {
	return &Expenses{store: store}
}

// ParseAmount converts user input into a positive amount.
func ParseAmount(text string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// Record stores a validated expense against a payer.
func (s *Expenses) Record(ctx context.Context, payerName string, amount float64, description string) (models.Expense, error) {
	payerName = strings.TrimSpace(payerName)
	if payerName == "" {
		return models.Expense{}, ErrEmptyName
	}
	if amount <= 0 {
		return models.Expense{}, ErrInvalidAmount
	}

	e, err := s.store.Add(ctx, payerName, amount, strings.TrimSpace(description))
	if err != nil {
		return models.Expense{}, err
	}

	logger.Event(ctx, "service.expenses", slog.LevelInfo, "expense.recorded",
		slog.String("payer", e.PayerName),
		slog.Float64("amount", e.Amount),
		slog.Int64("expense_id", e.ID),
	)
	return e, nil
}

// List returns every expense in recording order.
func (s *Expenses) List(ctx context.Context) ([]models.Expense, error) {
	return s.store.List(ctx)
}

// Delete removes one expense by id.
func (s *Expenses) Delete(ctx context.Context, id int64) error {
	err := s.store.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExpenseNotFound
	}
	if err != nil {
		return err
	}

	logger.Event(ctx, "service.expenses", slog.LevelInfo, "expense.deleted",
		slog.Int64("expense_id", id),
	)
	return nil
}
