package endpoints

import (
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
)

// FieldError is one failed validation rule on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRegex  = regexp.MustCompile(`^[A-Za-z]+$`)
)

func respondWithFieldErrors(w http.ResponseWriter, errs []FieldError) {
	respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
}

// validateName checks the display name rules: letters only once internal
// whitespace is removed, 3 to 25 characters.
func validateName(name string) *FieldError {
	stripped := strings.Join(strings.Fields(name), "")
	if stripped == "" {
		return &FieldError{Field: "name", Message: "name is required"}
	}
	if len(stripped) < 3 || len(stripped) > 25 {
		return &FieldError{Field: "name", Message: "name must be between 3 and 25 characters"}
	}
	if !nameRegex.MatchString(stripped) {
		return &FieldError{Field: "name", Message: "name must contain letters only"}
	}
	return nil
}

func validateEmail(email string) *FieldError {
	if email == "" {
		return &FieldError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return &FieldError{Field: "email", Message: "email must be a valid email address"}
	}
	return nil
}

// validatePassword checks length and requires at least one special
// character.
func validatePassword(field, password string) *FieldError {
	if password == "" {
		return &FieldError{Field: field, Message: field + " is required"}
	}
	if len(password) < 5 || len(password) > 25 {
		return &FieldError{Field: field, Message: field + " must be between 5 and 25 characters"}
	}
	hasSpecial := false
	for _, r := range password {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			hasSpecial = true
			break
		}
	}
	if !hasSpecial {
		return &FieldError{Field: field, Message: field + " must contain at least one special character"}
	}
	return nil
}

func validateNoteTitle(title string) *FieldError {
	if strings.TrimSpace(title) == "" {
		return &FieldError{Field: "title", Message: "title is required"}
	}
	return nil
}

func validateNoteContent(content string) *FieldError {
	if strings.TrimSpace(content) == "" {
		return &FieldError{Field: "content", Message: "content is required"}
	}
	return nil
}

func validateCategory(category model.Category) *FieldError {
	if !category.Valid() {
		return &FieldError{Field: "category", Message: "category must be one of work, personal, meetings"}
	}
	return nil
}
