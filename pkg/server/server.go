package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/notes-in-go/pkg/config"
	"github.com/doodlesbykumbi/notes-in-go/pkg/password"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/notes-in-go/pkg/token"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB

	UsersStore store.UsersStore
	NotesStore store.NotesStore

	Issuer *token.Issuer
	Hasher *password.Hasher

	srv *http.Server
}

func NewServer(
	usersStore store.UsersStore,
	notesStore store.NotesStore,
	issuer *token.Issuer,
	hasher *password.Hasher,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:     router,
		DB:         db,
		UsersStore: usersStore,
		NotesStore: notesStore,
		Issuer:     issuer,
		Hasher:     hasher,
		srv:        srv,
	}
}

// Config returns the current global configuration. Handlers read it per
// request so that reloads picked up by config.Watch take effect without a
// restart.
func (s Server) Config() *config.Config {
	return config.Get()
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts the server down, waiting for in-flight
// requests up to the context deadline.
func (s Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
