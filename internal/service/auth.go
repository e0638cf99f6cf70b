package service

import (
	"context"
	"errors"

	"github.com/Venkat-46/devs-dairy-backend/internal/crypto"
	"github.com/Venkat-46/devs-dairy-backend/internal/model"
	"github.com/Venkat-46/devs-dairy-backend/internal/repository"
)

var (
	ErrInvalidUser     = errors.New("invalid user")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmailTaken      = errors.New("email already registered")
)

// AuthService handles signup and login. It never stores or compares
// plaintext passwords; all verification goes through the one-way Argon2id
// hash.
type AuthService struct {
	users     UserStore
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: secret}
}

// Signup creates a new account with a hashed password and returns the new
// user id. A duplicate email fails with ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (int64, error) {
	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	return user.ID, nil
}

// Login verifies the submitted credentials and issues a session token.
// Unknown user, wrong role and wrong password each fail with their own
// sentinel so callers can report the exact reason.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidUser
		}
		return model.LoginResponse{}, err
	}

	if req.Role != user.Role {
		return model.LoginResponse{}, ErrInvalidRole
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidPassword
	}

	token, err := crypto.GenerateToken(user.Username, s.jwtSecret)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{JWTToken: token, UserID: user.ID}, nil
}
