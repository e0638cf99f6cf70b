package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Venkat-46/devs-dairy-backend/internal/middleware"
	"github.com/Venkat-46/devs-dairy-backend/internal/model"
	"github.com/Venkat-46/devs-dairy-backend/internal/repository"
	"github.com/Venkat-46/devs-dairy-backend/internal/service"
)

const testSecret = "test-secret"

// memUserStore and memLogStore back the handler tests with the same
// contract as the SQL repositories.
type memUserStore struct {
	users  []model.User
	nextID int64
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, len(m.users))
	for i, u := range m.users {
		u.PasswordHash = ""
		out[i] = u
	}
	return out, nil
}

type memLogStore struct {
	entries []model.LogEntry
	nextID  int64
}

func (m *memLogStore) Insert(_ context.Context, entry *model.LogEntry) error {
	m.nextID++
	entry.ID = m.nextID
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memLogStore) ListByUser(_ context.Context, userID int64) ([]model.LogEntry, error) {
	var out []model.LogEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLogStore) GetOne(_ context.Context, userID, logID int64) (*model.LogEntry, error) {
	for _, e := range m.entries {
		if e.UserID == userID && e.ID == logID {
			e := e
			return &e, nil
		}
	}
	return nil, repository.ErrLogNotFound
}

func (m *memLogStore) Update(_ context.Context, entry *model.LogEntry) error {
	for i, e := range m.entries {
		if e.UserID == entry.UserID && e.ID == entry.ID {
			m.entries[i] = *entry
			return nil
		}
	}
	return repository.ErrLogNotFound
}

func (m *memLogStore) Delete(_ context.Context, userID, logID int64) error {
	for i, e := range m.entries {
		if e.UserID == userID && e.ID == logID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrLogNotFound
}

// newTestRouter assembles the full route table the way cmd/api does,
// backed by in-memory stores.
func newTestRouter() http.Handler {
	users := &memUserStore{}
	logs := &memLogStore{}

	authHandler := NewAuthHandler(service.NewAuthService(users, testSecret))
	userHandler := NewUserHandler(service.NewUserService(users))
	logHandler := NewLogHandler(service.NewLogService(logs, service.NewGuard(users)))

	r := chi.NewRouter()

	r.Post("/signup", authHandler.HandleSignup)
	r.Post("/login", authHandler.HandleLogin)

	r.Get("/users", userHandler.HandleListUsers)
	r.Get("/users/{userid}", userHandler.HandleGetUser)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret))

		r.Get("/userlogs/{userid}", logHandler.HandleListLogs)
		r.Get("/userlogs/{userid}/{logid}", logHandler.HandleGetLog)
		r.Post("/userlogs/{userid}", logHandler.HandleAddLog)
		r.Post("/userlogs/update/{userid}/{logid}", logHandler.HandleUpdateLog)
		r.Delete("/userlogs/delete/{userid}/{logid}", logHandler.HandleDeleteLog)
	})

	return r
}
