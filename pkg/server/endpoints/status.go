package endpoints

import (
	"net/http"
	"os"

	"github.com/doodlesbykumbi/notes-in-go/pkg/server"
)

// StatusResponse represents the response from the status endpoint
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RegisterStatusEndpoints registers the status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	// GET / - Status (no auth required)
	s.Router.HandleFunc("/", handleStatus(s)).Methods("GET")
}

func handleStatus(s *server.Server) http.HandlerFunc {
	db := s.DB

	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("NOTES_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		if db != nil {
			if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
				respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{
					Status:  "error",
					Version: version,
				})
				return
			}
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Version: version,
		})
	}
}
