package service

import (
	"context"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
)

// UserStore is the credential-store surface the services consume.
// Implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// LogStore is the log-store surface the services consume. Implemented by
// repository.LogRepository. Update and Delete match on the (owner, id)
// pair jointly and report repository.ErrLogNotFound when nothing matches.
type LogStore interface {
	Insert(ctx context.Context, entry *model.LogEntry) error
	ListByUser(ctx context.Context, userID int64) ([]model.LogEntry, error)
	GetOne(ctx context.Context, userID, logID int64) (*model.LogEntry, error)
	Update(ctx context.Context, entry *model.LogEntry) error
	Delete(ctx context.Context, userID, logID int64) error
}
