package models

import "time"

// User represents an account that owns tasks and authenticates against the API.
// The password hash never leaves the server: it is excluded from JSON.
type User struct {
	// UserID is the unique identifier assigned by the store on insert.
	UserID int64 `json:"id"`

	// Username is the unique public name of the account.
	Username string `json:"username"`

	// Email is the unique address used to log in.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6,maxbytes=72"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
