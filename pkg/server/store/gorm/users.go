package gorm

import (
	"strings"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser persists a new user.
func (s *UsersStore) CreateUser(user *model.User) error {
	err := s.db.Create(user).Error
	if err != nil {
		// The unique index on email surfaces as a postgres duplicate key
		// violation.
		if strings.Contains(err.Error(), "duplicate key") {
			return store.ErrDuplicateUser
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email.
func (s *UsersStore) FindByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).First(&user)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// FindByID retrieves a user by ID.
func (s *UsersStore) FindByID(id string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("id = ?", id).First(&user)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// UpdatePassword replaces the stored password digest for a user.
func (s *UsersStore) UpdatePassword(id string, passwordHash string) error {
	tx := s.db.Model(&model.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}
