package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/notes-in-go/pkg/audit"
	"github.com/doodlesbykumbi/notes-in-go/pkg/identity"
	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
)

// Pagination describes one page of a note listing.
type Pagination struct {
	TotalNotes    int64   `json:"totalNotes"`
	CurrentPage   int     `json:"currentPage"`
	TotalPages    int     `json:"totalPages"`
	NotesPerPage  int     `json:"notesPerPage"`
	FilterApplied *string `json:"filterApplied"`
}

// RegisterNotesEndpoints registers the /notes endpoints
func RegisterNotesEndpoints(s *server.Server) {
	authn := middleware.NewAuthenticator(s.Issuer)

	notesRouter := s.Router.PathPrefix("/notes").Subrouter()
	notesRouter.Use(authn.Middleware)

	notesRouter.HandleFunc("", handleCreateNote(s)).Methods("POST")
	notesRouter.HandleFunc("", handleListNotes(s)).Methods("GET")
	notesRouter.HandleFunc("/{id}", handleGetNote(s)).Methods("GET")
	notesRouter.HandleFunc("/{id}", handleUpdateNote(s)).Methods("PUT")
	notesRouter.HandleFunc("/{id}", handleDeleteNote(s)).Methods("DELETE")
}

// noteID parses the {id} path variable. Anything that isn't a positive
// integer behaves like a note that doesn't exist.
func noteID(r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

type createNoteRequest struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Category model.Category `json:"category"`
}

func handleCreateNote(s *server.Server) http.HandlerFunc {
	notesStore := s.NotesStore

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		var req createNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var errs []FieldError
		if fe := validateNoteTitle(req.Title); fe != nil {
			errs = append(errs, *fe)
		}
		if fe := validateNoteContent(req.Content); fe != nil {
			errs = append(errs, *fe)
		}
		if req.Category != "" {
			if fe := validateCategory(req.Category); fe != nil {
				errs = append(errs, *fe)
			}
		}
		if len(errs) > 0 {
			respondWithFieldErrors(w, errs)
			return
		}

		note := &model.Note{
			OwnerID: id.UserID,
			Title:   req.Title,
			Content: req.Content,
		}
		if req.Category != "" {
			category := req.Category
			note.Category = &category
		}

		if err := notesStore.CreateNote(note); err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "failed to create note")
			return
		}

		audit.Log(audit.NoteEvent{
			UserID:    id.UserID,
			ClientIP:  clientIP(r, s.Config()),
			NoteID:    note.ID,
			Operation: "create",
			Success:   true,
		})

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Note created successfully",
			"note":    note,
		})
	}
}

func handleListNotes(s *server.Server) http.HandlerFunc {
	notesStore := s.NotesStore

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		// Read per request so config reloads apply to in-flight traffic.
		cfg := s.Config()

		// Unusable values silently fall back to defaults.
		page := 1
		if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
			page = v
		}
		pageSize := cfg.PageSizeDefault
		if v, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && v > 0 {
			pageSize = v
			if pageSize > cfg.PageSizeMax {
				pageSize = cfg.PageSizeMax
			}
		}

		// An unknown category is ignored rather than rejected.
		var category *model.Category
		if raw := r.URL.Query().Get("category"); raw != "" {
			if c := model.Category(raw); c.Valid() {
				category = &c
			}
		}

		result, err := notesStore.ListNotes(id.UserID, page, pageSize, category)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "failed to list notes")
			return
		}

		var filterApplied *string
		if category != nil {
			filter := string(*category)
			filterApplied = &filter
		}

		notes := result.Notes
		if notes == nil {
			notes = []model.Note{}
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Notes retrieved successfully",
			"pagination": Pagination{
				TotalNotes:    result.TotalNotes,
				CurrentPage:   result.Page,
				TotalPages:    result.TotalPages,
				NotesPerPage:  result.PageSize,
				FilterApplied: filterApplied,
			},
			"notes": notes,
		})
	}
}

func handleGetNote(s *server.Server) http.HandlerFunc {
	notesStore := s.NotesStore

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		nid, ok := noteID(r)
		if !ok {
			respondWithMessage(w, http.StatusNotFound, "note not found")
			return
		}

		note, err := notesStore.GetNote(id.UserID, nid)
		if err != nil {
			if errors.Is(err, store.ErrNoteNotFound) {
				respondWithMessage(w, http.StatusNotFound, "note not found")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "failed to retrieve note")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Note retrieved successfully",
			"note":    note,
		})
	}
}

type updateNoteRequest struct {
	Title    *string         `json:"title"`
	Content  *string         `json:"content"`
	Category *model.Category `json:"category"`
}

func handleUpdateNote(s *server.Server) http.HandlerFunc {
	notesStore := s.NotesStore

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		nid, ok := noteID(r)
		if !ok {
			respondWithMessage(w, http.StatusNotFound, "note not found")
			return
		}

		var req updateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var errs []FieldError
		if req.Title != nil {
			if fe := validateNoteTitle(*req.Title); fe != nil {
				errs = append(errs, *fe)
			}
		}
		if req.Content != nil {
			if fe := validateNoteContent(*req.Content); fe != nil {
				errs = append(errs, *fe)
			}
		}
		if req.Category != nil && *req.Category != "" {
			if fe := validateCategory(*req.Category); fe != nil {
				errs = append(errs, *fe)
			}
		}
		if len(errs) > 0 {
			respondWithFieldErrors(w, errs)
			return
		}

		note, err := notesStore.UpdateNote(id.UserID, nid, store.NotePatch{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
		})
		if err != nil {
			if errors.Is(err, store.ErrNoteNotFound) {
				audit.Log(audit.NoteEvent{
					UserID:       id.UserID,
					ClientIP:     clientIP(r, s.Config()),
					NoteID:       nid,
					Operation:    "update",
					Success:      false,
					ErrorMessage: "note not found",
				})
				respondWithMessage(w, http.StatusNotFound, "note not found")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "failed to update note")
			return
		}

		audit.Log(audit.NoteEvent{
			UserID:    id.UserID,
			ClientIP:  clientIP(r, s.Config()),
			NoteID:    nid,
			Operation: "update",
			Success:   true,
		})

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Note updated successfully",
			"note":    note,
		})
	}
}

func handleDeleteNote(s *server.Server) http.HandlerFunc {
	notesStore := s.NotesStore

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		nid, ok := noteID(r)
		if !ok {
			respondWithMessage(w, http.StatusNotFound, "note not found")
			return
		}

		if err := notesStore.DeleteNote(id.UserID, nid); err != nil {
			if errors.Is(err, store.ErrNoteNotFound) {
				audit.Log(audit.NoteEvent{
					UserID:       id.UserID,
					ClientIP:     clientIP(r, s.Config()),
					NoteID:       nid,
					Operation:    "delete",
					Success:      false,
					ErrorMessage: "note not found",
				})
				respondWithMessage(w, http.StatusNotFound, "note not found")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "failed to delete note")
			return
		}

		audit.Log(audit.NoteEvent{
			UserID:    id.UserID,
			ClientIP:  clientIP(r, s.Config()),
			NoteID:    nid,
			Operation: "delete",
			Success:   true,
		})

		respondWithMessage(w, http.StatusOK, "Note deleted successfully")
	}
}
