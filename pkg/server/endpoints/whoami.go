package endpoints

import (
	"errors"
	"net/http"

	"github.com/doodlesbykumbi/notes-in-go/pkg/identity"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	User     UserResponse `json:"user"`
	TokenIAT int64        `json:"token_iat"`
	TokenExp int64        `json:"token_exp"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	authn := middleware.NewAuthenticator(s.Issuer)

	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(authn.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami(s)).Methods("GET")
}

func handleWhoami(s *server.Server) http.HandlerFunc {
	usersStore := s.UsersStore

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		user, err := usersStore.FindByID(id.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "failed to resolve identity")
			return
		}

		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			User:     userResponse(user),
			TokenIAT: id.IssuedAt.Unix(),
			TokenExp: id.ExpiresAt.Unix(),
		})
	}
}
