package auth

import (
	"context"
	"errors"

	"github.com/jon4hz/cookbook/internal/database"
)

// ErrUsernameTaken is returned by Register when the username is already in use.
var ErrUsernameTaken = errors.New("username already exists")

// Result is the outcome of a credential check.
type Result int

const (
	ResultOK Result = iota
	ResultUnknownUser
	ResultWrongPassword
)

// UserStore is the part of database.DB needed for signup and login.
type UserStore interface {
	CreateUser(ctx context.Context, user *database.User) error
	GetUserByUsername(ctx context.Context, username string) (*database.User, error)
}

// Verify checks a username and password against the stored user.
// Passwords are compared as stored plaintext.
func Verify(ctx context.Context, store UserStore, username, password string) (Result, error) {
	user, err := store.GetUserByUsername(ctx, username)
	if errors.Is(err, database.ErrNotFound) {
		return ResultUnknownUser, nil
	}
	if err != nil {
		return ResultUnknownUser, err
	}
	if user.Password != password {
		return ResultWrongPassword, nil
	}
	return ResultOK, nil
}

// Register creates a user if no user with the same username exists.
// The lookup and insert are separate calls, two concurrent registrations of
// the same name can both succeed.
func Register(ctx context.Context, store UserStore, username, password string) (*database.User, error) {
	_, err := store.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	user := &database.User{
		Username: username,
		Password: password,
	}
	if err := store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
