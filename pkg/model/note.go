package model

import "time"

// Category is the closed set of note categories. The empty value means
// the note is uncategorized.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryMeetings Category = "meetings"
)

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryMeetings:
		return true
	}
	return false
}

type Note struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"column:owner_id" json:"owner"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *Category `gorm:"type:text" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Note) TableName() string {
	return "notes"
}
