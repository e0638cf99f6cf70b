package service

import (
	"context"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
	"github.com/Venkat-46/devs-dairy-backend/internal/repository"
)

// fakeUserStore is an in-memory UserStore mirroring the repository's
// contract: atomic duplicate-email rejection, first-match-by-id username
// lookup, sentinel errors on absence.
type fakeUserStore struct {
	users  []model.User
	nextID int64
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, len(f.users))
	for i, u := range f.users {
		u.PasswordHash = ""
		out[i] = u
	}
	return out, nil
}

// fakeLogStore is an in-memory LogStore with the same joint-match
// semantics as the userlogs table. When owners is non-nil, Insert
// enforces referential integrity against it.
type fakeLogStore struct {
	entries []model.LogEntry
	owners  *fakeUserStore
	nextID  int64
}

func (f *fakeLogStore) Insert(ctx context.Context, entry *model.LogEntry) error {
	if f.owners != nil {
		if _, err := f.owners.GetByID(ctx, entry.UserID); err != nil {
			return repository.ErrUnknownUser
		}
	}
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeLogStore) ListByUser(_ context.Context, userID int64) ([]model.LogEntry, error) {
	var out []model.LogEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLogStore) GetOne(_ context.Context, userID, logID int64) (*model.LogEntry, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.ID == logID {
			e := e
			return &e, nil
		}
	}
	return nil, repository.ErrLogNotFound
}

func (f *fakeLogStore) Update(_ context.Context, entry *model.LogEntry) error {
	for i, e := range f.entries {
		if e.UserID == entry.UserID && e.ID == entry.ID {
			f.entries[i].Date = entry.Date
			f.entries[i].Yesterday = entry.Yesterday
			f.entries[i].Today = entry.Today
			f.entries[i].Blocker = entry.Blocker
			return nil
		}
	}
	return repository.ErrLogNotFound
}

func (f *fakeLogStore) Delete(_ context.Context, userID, logID int64) error {
	for i, e := range f.entries {
		if e.UserID == userID && e.ID == logID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrLogNotFound
}
