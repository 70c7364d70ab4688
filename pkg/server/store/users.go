package store

import (
	"errors"

	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a user's email is already registered.
var ErrDuplicateUser = errors.New("email already registered")

// UsersStore abstracts user account storage operations
type UsersStore interface {
	// CreateUser persists a new user. The user's ID is assigned on create.
	// Returns ErrDuplicateUser if the email is already taken.
	CreateUser(user *model.User) error

	// FindByEmail retrieves a user by email.
	// Returns ErrUserNotFound if no such user exists.
	FindByEmail(email string) (*model.User, error)

	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(id string) (*model.User, error)

	// UpdatePassword replaces the stored password digest for a user.
	// Returns ErrUserNotFound if no such user exists.
	UpdatePassword(id string, passwordHash string) error
}
