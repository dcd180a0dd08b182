package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/dongibot/internal/models"
)

// Expenses persists recorded spends.
type Expenses struct {
	db *sqlx.DB
}

// NewExpenses returns an expenses repository bound to db.
func NewExpenses(db *sqlx.DB) *Expenses {
	return &Expenses{db: db}
}

// Add records an expense and returns it with its assigned id.
func (r *Expenses) Add(ctx context.Context, payerName string, amount float64, description string) (models.Expense, error) {
	var e models.Expense
	err := r.db.GetContext(ctx, &e,
		`INSERT INTO expenses (payer_name, amount, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, payer_name, amount, description`,
		payerName, amount, description)
	if err != nil {
		return models.Expense{}, fmt.Errorf("expenses insert: %w", err)
	}
	return e, nil
}

// List returns every expense ordered by id.
func (r *Expenses) List(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.SelectContext(ctx, &expenses,
		`SELECT id, payer_name, amount, description FROM expenses ORDER BY id`); err != nil {
		return nil, fmt.Errorf("expenses select: %w", err)
	}
	return expenses, nil
}

// DeleteByID removes one expense. Returns ErrNotFound when no row matches.
func (r *Expenses) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("expenses delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("expenses delete: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
