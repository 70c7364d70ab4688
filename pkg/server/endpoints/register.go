package endpoints

import (
	"github.com/doodlesbykumbi/notes-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterNotesEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterStatusEndpoints(srv)
}
