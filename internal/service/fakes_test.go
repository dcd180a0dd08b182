package service

import (
	"context"

	"github.com/m3rciful/dongibot/internal/models"
	"github.com/m3rciful/dongibot/internal/repository"
)

type fakePeopleStore struct {
	people []models.Person
	nextID int64
}

func (f *fakePeopleStore) Add(_ context.Context, name string) (models.Person, error) {
	for _, p := range f.people {
		if p.Name == name {
			return models.Person{}, repository.ErrDuplicateName
		}
	}
	f.nextID++
	p := models.Person{ID: f.nextID, Name: name}
	f.people = append(f.people, p)
	return p, nil
}

func (f *fakePeopleStore) AddIfAbsent(ctx context.Context, name string) (bool, error) {
	for _, p := range f.people {
		if p.Name == name {
			return false, nil
		}
	}
	_, err := f.Add(ctx, name)
	return err == nil, err
}

func (f *fakePeopleStore) List(context.Context) ([]models.Person, error) {
	return append([]models.Person(nil), f.people...), nil
}

func (f *fakePeopleStore) DeleteByName(_ context.Context, name string) error {
	for i, p := range f.people {
		if p.Name == name {
			f.people = append(f.people[:i], f.people[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeExpenseStore struct {
	expenses []models.Expense
	nextID   int64
}

func (f *fakeExpenseStore) Add(_ context.Context, payer string, amount float64, desc string) (models.Expense, error) {
	f.nextID++
	e := models.Expense{ID: f.nextID, PayerName: payer, Amount: amount, Description: desc}
	f.expenses = append(f.expenses, e)
	return e, nil
}

func (f *fakeExpenseStore) List(context.Context) ([]models.Expense, error) {
	return append([]models.Expense(nil), f.expenses...), nil
}

func (f *fakeExpenseStore) DeleteByID(_ context.Context, id int64) error {
	for i, e := range f.expenses {
		if e.ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserStore struct {
	users []models.ChatUser
}

func (f *fakeUserStore) Ensure(_ context.Context, chatID int64) (bool, error) {
	for _, u := range f.users {
		if u.ChatID == chatID {
			return false, nil
		}
	}
	f.users = append(f.users, models.ChatUser{ChatID: chatID})
	return true, nil
}

func (f *fakeUserStore) List(context.Context) ([]models.ChatUser, error) {
	return append([]models.ChatUser(nil), f.users...), nil
}

func (f *fakeUserStore) IsBlocked(_ context.Context, chatID int64) (bool, error) {
	for _, u := range f.users {
		if u.ChatID == chatID {
			return u.IsBlocked, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) SetBlocked(_ context.Context, chatID int64, blocked bool) error {
	for i, u := range f.users {
		if u.ChatID == chatID {
			f.users[i].IsBlocked = blocked
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, chatID int64) error {
	for i, u := range f.users {
		if u.ChatID == chatID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserStore) has(chatID int64) bool {
	for _, u := range f.users {
		if u.ChatID == chatID {
			return true
		}
	}
	return false
}
