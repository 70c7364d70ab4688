package store

import (
	"errors"

	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
)

// ErrNoteNotFound is returned when a note doesn't exist or belongs to a
// different owner. The two cases are deliberately indistinguishable.
var ErrNoteNotFound = errors.New("note not found")

// NotePatch describes a partial update to a note. Nil fields are left
// unchanged. Setting Category to a pointer to the empty value clears it.
type NotePatch struct {
	Title    *string
	Content  *string
	Category *model.Category
}

// NotePage is one page of a note listing.
type NotePage struct {
	Notes      []model.Note
	TotalNotes int64
	TotalPages int
	Page       int
	PageSize   int
}

// NotesStore abstracts note storage operations. Every method takes the
// owner's user ID and only ever touches that owner's rows.
type NotesStore interface {
	// CreateNote persists a new note. The note's ID and timestamps are
	// assigned on create; OwnerID must be set by the caller.
	CreateNote(note *model.Note) error

	// ListNotes returns one page of the owner's notes, newest first,
	// optionally filtered by category. page and pageSize values below 1
	// are treated as 1.
	ListNotes(ownerID string, page int, pageSize int, category *model.Category) (*NotePage, error)

	// GetNote retrieves one of the owner's notes by ID.
	// Returns ErrNoteNotFound if the note doesn't exist or isn't theirs.
	GetNote(ownerID string, id int64) (*model.Note, error)

	// UpdateNote applies a partial update to one of the owner's notes and
	// returns the updated row.
	// Returns ErrNoteNotFound if the note doesn't exist or isn't theirs.
	UpdateNote(ownerID string, id int64, patch NotePatch) (*model.Note, error)

	// DeleteNote removes one of the owner's notes.
	// Returns ErrNoteNotFound if the note doesn't exist or isn't theirs.
	DeleteNote(ownerID string, id int64) error
}
