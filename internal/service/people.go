package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/m3rciful/dongibot/core/logger"
	"github.com/m3rciful/dongibot/internal/models"
	"github.com/m3rciful/dongibot/internal/repository"
)

// PeopleStore is the persistence surface the people service needs.
type PeopleStore interface {
	Add(ctx context.Context, name string) (models.Person, error)
	AddIfAbsent(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]models.Person, error)
	DeleteByName(ctx context.Context, name string) error
}

// People manages the participants expenses are split between.
type People struct {
	store PeopleStore
}

// NewPeople wires a people service over store.
func NewPeople(store PeopleStore) *People {
	return &People{store: store}
}

// Add registers a new participant. Names are trimmed and must be unique.
func (s *People) Add(ctx context.Context, name string) (models.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Person{}, ErrEmptyName
	}

	p, err := s.store.Add(ctx, name)
	if errors.Is(err, repository.ErrDuplicateName) {
		return models.Person{}, ErrDuplicateName
	}
	if err != nil {
		return models.Person{}, err
	}

	logger.Event(ctx, "service.people", slog.LevelInfo, "person.added",
		slog.String("person", p.Name),
	)
	return p, nil
}

// Remove deletes a participant by name. Recorded expenses keep naming them.
func (s *People) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	err := s.store.DeleteByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPersonNotFound
	}
	if err != nil {
		return err
	}

	logger.Event(ctx, "service.people", slog.LevelInfo, "person.removed",
		slog.String("person", name),
	)
	return nil
}

// List returns all participants in insertion order.
func (s *People) List(ctx context.Context) ([]models.Person, error) {
	return s.store.List(ctx)
}

// Seed registers each default participant that is not present yet.
func (s *People) Seed(ctx context.Context, names []string) error {
	added := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		created, err := s.store.AddIfAbsent(ctx, name)
		if err != nil {
			return err
		}
		if created {
			added++
		}
	}
	if added > 0 {
		logger.Event(ctx, "seed", slog.LevelInfo, "seed.people",
			slog.Int("added", added),
		)
	}
	return nil
}
