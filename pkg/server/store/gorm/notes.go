package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
)

// Ensure NotesStore implements store.NotesStore
var _ store.NotesStore = (*NotesStore)(nil)

// NotesStore implements store.NotesStore using GORM
type NotesStore struct {
	db *gorm.DB
}

// NewNotesStore creates a new NotesStore
func NewNotesStore(db *gorm.DB) *NotesStore {
	return &NotesStore{db: db}
}

// CreateNote persists a new note.
func (s *NotesStore) CreateNote(note *model.Note) error {
	return s.db.Create(note).Error
}

// ListNotes returns one page of the owner's notes, newest first.
func (s *NotesStore) ListNotes(ownerID string, page int, pageSize int, category *model.Category) (*store.NotePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	query := s.db.Model(&model.Note{}).Where("owner_id = ?", ownerID)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var notes []model.Note
	tx := query.
		Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notes)
	if tx.Error != nil {
		return nil, tx.Error
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &store.NotePage{
		Notes:      notes,
		TotalNotes: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetNote retrieves one of the owner's notes by ID.
func (s *NotesStore) GetNote(ownerID string, id int64) (*model.Note, error) {
	var note model.Note
	tx := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&note)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrNoteNotFound
		}
		return nil, tx.Error
	}
	return &note, nil
}

// UpdateNote applies a partial update to one of the owner's notes.
func (s *NotesStore) UpdateNote(ownerID string, id int64, patch store.NotePatch) (*model.Note, error) {
	note, err := s.GetNote(ownerID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Category != nil {
		if *patch.Category == "" {
			updates["category"] = nil
		} else {
			updates["category"] = *patch.Category
		}
	}
	if len(updates) == 0 {
		return note, nil
	}

	tx := s.db.Model(note).Where("owner_id = ?", ownerID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return s.GetNote(ownerID, id)
}

// DeleteNote removes one of the owner's notes.
func (s *NotesStore) DeleteNote(ownerID string, id int64) error {
	tx := s.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Note{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNoteNotFound
	}
	return nil
}
