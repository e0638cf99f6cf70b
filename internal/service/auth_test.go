package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Venkat-46/devs-dairy-backend/internal/crypto"
	"github.com/Venkat-46/devs-dairy-backend/internal/model"
)

const testSecret = "test-secret"

func signupReq(username, email string) model.SignupRequest {
	return model.SignupRequest{
		Username: username,
		Email:    email,
		Password: "p",
		Role:     model.RoleMember,
	}
}

func TestSignup_StoresHashNotPlaintext(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store, testSecret)

	id, err := svc.Signup(context.Background(), signupReq("a", "a@x.com"))
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatal("Signup() returned zero user id")
	}

	stored, err := store.GetByUsername(context.Background(), "a")
	if err != nil {
		t.Fatalf("GetByUsername() unexpected error: %v", err)
	}
	if stored.PasswordHash == "p" {
		t.Error("stored password equals the submitted plaintext")
	}
	match, err := crypto.VerifyPassword("p", stored.PasswordHash)
	if err != nil || !match {
		t.Errorf("stored hash does not verify against the plaintext: match=%v err=%v", match, err)
	}
}

func TestSignup_DistinctEmailsDistinctIDs(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store, testSecret)

	id1, err := svc.Signup(context.Background(), signupReq("a", "a@x.com"))
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	id2, err := svc.Signup(context.Background(), signupReq("b", "b@x.com"))
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if id1 == id2 {
		t.Errorf("distinct signups got the same id %d", id1)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store, testSecret)

	if _, err := svc.Signup(context.Background(), signupReq("a", "a@x.com")); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	_, err := svc.Signup(context.Background(), signupReq("other", "a@x.com"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("Signup() error = %v, want ErrEmailTaken", err)
	}

	if len(store.users) != 1 {
		t.Errorf("expected exactly one row for the email, got %d", len(store.users))
	}
}

func TestLogin_Success(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store, testSecret)

	id, err := svc.Signup(context.Background(), signupReq("a", "a@x.com"))
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "a",
		Password: "p",
		Role:     model.RoleMember,
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.UserID != id {
		t.Errorf("Login() UserID = %d, want %d", resp.UserID, id)
	}

	claims, err := crypto.ValidateToken(resp.JWTToken, testSecret)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "a" {
		t.Errorf("token username = %q, want %q", claims.Username, "a")
	}
}

func TestLogin_DistinctFailures(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store, testSecret)

	if _, err := svc.Signup(context.Background(), signupReq("a", "a@x.com")); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	tests := []struct {
		name string
		req  model.LoginRequest
		want error
	}{
		{"unknown user", model.LoginRequest{Username: "ghost", Password: "p", Role: model.RoleMember}, ErrInvalidUser},
		{"wrong role", model.LoginRequest{Username: "a", Password: "p", Role: model.RoleAdmin}, ErrInvalidRole},
		{"wrong password", model.LoginRequest{Username: "a", Password: "nope", Role: model.RoleMember}, ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Login() error = %v, want %v", err, tt.want)
			}
			if resp.JWTToken != "" {
				t.Error("Login() issued a token on failure")
			}
		})
	}
}
