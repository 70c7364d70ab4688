package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) UpdatePassword(id string, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

// MockNotesStore implements store.NotesStore for testing using testify/mock
type MockNotesStore struct {
	mock.Mock
}

func NewMockNotesStore() *MockNotesStore {
	return &MockNotesStore{}
}

func (m *MockNotesStore) CreateNote(note *model.Note) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockNotesStore) ListNotes(ownerID string, page int, pageSize int, category *model.Category) (*store.NotePage, error) {
	args := m.Called(ownerID, page, pageSize, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.NotePage), args.Error(1)
}

func (m *MockNotesStore) GetNote(ownerID string, id int64) (*model.Note, error) {
	args := m.Called(ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNotesStore) UpdateNote(ownerID string, id int64, patch store.NotePatch) (*model.Note, error) {
	args := m.Called(ownerID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNotesStore) DeleteNote(ownerID string, id int64) error {
	args := m.Called(ownerID, id)
	return args.Error(0)
}
