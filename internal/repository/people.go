package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/dongibot/internal/models"
)

// People persists ledger participants.
type People struct {
	db *sqlx.DB
}

// NewPeople returns a people repository bound to db.
func NewPeople(db *sqlx.DB) *People {
	return &People{db: db}
}

// Add inserts a new person. Returns ErrDuplicateName if the name is taken.
func (r *People) Add(ctx context.Context, name string) (models.Person, error) {
	var p models.Person
	err := r.db.GetContext(ctx, &p,
		`INSERT INTO people (name) VALUES ($1) RETURNING id, name`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Person{}, ErrDuplicateName
		}
		return models.Person{}, fmt.Errorf("people insert: %w", err)
	}
	return p, nil
}

// AddIfAbsent inserts a person, ignoring the insert when the name exists.
// Reports whether a row was created.
func (r *People) AddIfAbsent(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO people (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return false, fmt.Errorf("people insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("people insert: %w", err)
	}
	return n > 0, nil
}

// List returns all people ordered by insertion.
func (r *People) List(ctx context.Context) ([]models.Person, error) {
	var people []models.Person
	if err := r.db.SelectContext(ctx, &people,
		`SELECT id, name FROM people ORDER BY id`); err != nil {
		return nil, fmt.Errorf("people select: %w", err)
	}
	return people, nil
}

// DeleteByName removes a person. Returns ErrNotFound when no row matches.
func (r *People) DeleteByName(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("people delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("people delete: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
