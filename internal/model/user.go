package model

// Roles a user can hold. The role is asserted at login and stored with the
// account; there is no role-based elevation beyond it.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is a user row in the database. PasswordHash never leaves the
// service layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

// SignupRequest is the POST /signup body.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin member"`
}

// LoginRequest is the POST /login body. The role is compared against the
// stored one, not merely echoed back.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginResponse is the POST /login success payload.
type LoginResponse struct {
	JWTToken string `json:"jwtToken"`
	UserID   int64  `json:"userid"`
}

// UserResponse is the public projection of a user, with the password hash
// omitted.
type UserResponse struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}
