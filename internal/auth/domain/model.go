// Package domain contains models and contracts for operator authentication.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// User is an operator account. Password holds only the encoded argon2id
// hash and is never serialized or returned to callers.
type User struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Email     string       `gorm:"not null;uniqueIndex" json:"email"`
	Password  string       `gorm:"not null" json:"-"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Session is a server-side login session referenced by an opaque cookie
// token. Only the token hash is stored.
type Session struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	UserID    snowflake.ID `gorm:"not null;index"`
	TokenHash string       `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time    `gorm:"not null"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }

// RegisterInput carries raw registration form fields.
type RegisterInput struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginRequest carries submitted credentials.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResult reports an established session. RawToken goes into the
// session cookie; only its hash is persisted.
type LoginResult struct {
	User      User
	RawToken  string
	ExpiresAt time.Time
}

type Service interface {
	// Register validates the input, stores the user with a hashed password
	// and immediately establishes a session for the new account.
	Register(ctx context.Context, input RegisterInput) (*LoginResult, error)
	// Login authorizes credentials against the stored user record.
	// Any credential problem surfaces as ErrInvalidCredentials; the caller
	// cannot distinguish unknown email from wrong password.
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	// Logout revokes the session behind rawToken.
	Logout(ctx context.Context, rawToken string) error
	// Authenticate resolves rawToken to its user, or ErrInvalidSession.
	Authenticate(ctx context.Context, rawToken string) (*User, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrUserExists         = errors.New("user_exists")
	ErrRegistrationFailed = errors.New("registration_failed")
)

// Fixed messages shown to callers. The credential message deliberately does
// not say which part of the credentials was wrong.
const (
	MsgInvalidCredentials  = "Invalid credentials."
	MsgAuthFailed          = "Something went wrong."
	MsgRegistrationInvalid = "Registration failed. The submitted data is invalid."
	MsgRegistrationFailed  = "Registration failed. An unexpected error occurred."
)
