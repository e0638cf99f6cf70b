package service

import (
	"context"

	"github.com/Venkat-46/devs-dairy-backend/internal/model"
)

// UserService serves public user lookups. Responses only ever carry the
// public projection; the password hash stays inside the repository and
// service layers.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// ListUsers returns the public view of every user.
func (s *UserService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserResponse, len(users))
	for i, u := range users {
		result[i] = model.UserResponse{
			UserID:   u.ID,
			UserName: u.Username,
			Email:    u.Email,
		}
	}
	return result, nil
}

// GetUser returns the public view of a single user by id. Absence is
// reported as repository.ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		UserID:   user.ID,
		UserName: user.Username,
		Email:    user.Email,
	}, nil
}
