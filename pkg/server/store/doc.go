// Package store provides storage abstractions for the notes server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - UsersStore: account creation, lookup and password updates
//   - NotesStore: owner-scoped note CRUD and listing
//
// # Usage
//
//	notes := gorm.NewNotesStore(db)
//	note, err := notes.GetNote(ownerID, id)
//	if err != nil {
//	    if errors.Is(err, store.ErrNoteNotFound) {
//	        // Handle not found
//	    }
//	}
package store
