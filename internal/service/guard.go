package service

import (
	"context"
	"errors"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
	"github.com/Venkat-46/devs-dairy-backend/internal/repository"
)

var (
	ErrStaleToken = errors.New("token identity no longer exists")
	ErrForbidden  = errors.New("cannot act on another user's resources")
)

// Guard decides whether an authenticated identity may act on a target
// user's resources. The policy is same-user-only: an identity may act on
// its own user id and nothing else. It is a pure decision function with
// no side effects.
type Guard struct {
	users UserStore
}

// NewGuard creates a new Guard.
func NewGuard(users UserStore) *Guard {
	return &Guard{users: users}
}

// Authorize resolves the authenticated username back to a current user
// row and checks that its id matches targetUserID. The id and role are
// always re-read from the store; a token minted before an account changed
// carries no authority of its own.
func (g *Guard) Authorize(ctx context.Context, username string, targetUserID int64) (*model.User, error) {
	user, err := g.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrStaleToken
		}
		return nil, err
	}

	if user.ID != targetUserID {
		return nil, ErrForbidden
	}

	return user, nil
}
