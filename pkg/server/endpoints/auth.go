package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/doodlesbykumbi/notes-in-go/pkg/audit"
	"github.com/doodlesbykumbi/notes-in-go/pkg/identity"
	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
)

// UserResponse is the public view of a user returned by the API. The
// password digest never leaves the store layer.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func userResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// RegisterAuthEndpoints registers the /auth endpoints
func RegisterAuthEndpoints(s *server.Server) {
	authRouter := s.Router.PathPrefix("/auth").Subrouter()

	authRouter.HandleFunc("/register", handleRegister(s)).Methods("POST")
	authRouter.HandleFunc("/login", handleLogin(s)).Methods("POST")

	// Password changes require a valid token.
	authn := middleware.NewAuthenticator(s.Issuer)
	passwordRouter := s.Router.PathPrefix("/auth/update-password").Subrouter()
	passwordRouter.Use(authn.Middleware)
	passwordRouter.HandleFunc("", handleUpdatePassword(s)).Methods("PUT")
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func handleRegister(s *server.Server) http.HandlerFunc {
	usersStore := s.UsersStore
	hasher := s.Hasher

	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var errs []FieldError
		if fe := validateName(req.Name); fe != nil {
			errs = append(errs, *fe)
		}
		if fe := validateEmail(req.Email); fe != nil {
			errs = append(errs, *fe)
		}
		if fe := validatePassword("password", req.Password); fe != nil {
			errs = append(errs, *fe)
		}
		if req.Password != req.ConfirmPassword {
			errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
		}
		if len(errs) > 0 {
			respondWithFieldErrors(w, errs)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		hash, err := hasher.Hash(req.Password)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "failed to register user")
			return
		}

		user := &model.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: hash,
		}
		if err := usersStore.CreateUser(user); err != nil {
			if errors.Is(err, store.ErrDuplicateUser) {
				audit.Log(audit.RegisterEvent{
					Email:        email,
					ClientIP:     clientIP(r, s.Config()),
					Success:      false,
					ErrorMessage: "email already registered",
				})
				respondWithMessage(w, http.StatusBadRequest, "email already registered")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "failed to register user")
			return
		}

		audit.Log(audit.RegisterEvent{
			Email:    email,
			UserID:   user.ID,
			ClientIP: clientIP(r, s.Config()),
			Success:  true,
		})

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "User registered successfully",
			"user":    userResponse(user),
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func handleLogin(s *server.Server) http.HandlerFunc {
	usersStore := s.UsersStore
	hasher := s.Hasher
	issuer := s.Issuer

	// Unknown email and wrong password report the same message so the
	// endpoint can't be used to probe which emails are registered.
	const invalidCredentials = "invalid email or password"

	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Email == "" || req.Password == "" {
			respondWithMessage(w, http.StatusBadRequest, invalidCredentials)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		user, err := usersStore.FindByEmail(email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				audit.Log(audit.AuthenticateEvent{
					Email:        email,
					ClientIP:     clientIP(r, s.Config()),
					Success:      false,
					ErrorMessage: "unknown email",
				})
				respondWithMessage(w, http.StatusBadRequest, invalidCredentials)
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "failed to log in")
			return
		}

		if !hasher.Verify(req.Password, user.PasswordHash) {
			audit.Log(audit.AuthenticateEvent{
				Email:        email,
				UserID:       user.ID,
				ClientIP:     clientIP(r, s.Config()),
				Success:      false,
				ErrorMessage: "wrong password",
			})
			respondWithMessage(w, http.StatusBadRequest, invalidCredentials)
			return
		}

		tokenStr, err := issuer.Issue(user.ID)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "failed to log in")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Email:    email,
			UserID:   user.ID,
			ClientIP: clientIP(r, s.Config()),
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, map[string]string{
			"message": "Login successful",
			"token":   tokenStr,
		})
	}
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func handleUpdatePassword(s *server.Server) http.HandlerFunc {
	usersStore := s.UsersStore
	hasher := s.Hasher

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		var req updatePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var errs []FieldError
		if req.CurrentPassword == "" {
			errs = append(errs, FieldError{Field: "currentPassword", Message: "currentPassword is required"})
		}
		if fe := validatePassword("newPassword", req.NewPassword); fe != nil {
			errs = append(errs, *fe)
		}
		if req.NewPassword != req.ConfirmPassword {
			errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
		}
		if len(errs) > 0 {
			respondWithFieldErrors(w, errs)
			return
		}

		user, err := usersStore.FindByID(id.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// The token outlived the account.
				respondWithMessage(w, http.StatusUnauthorized, "Unable to determine identity")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "failed to update password")
			return
		}

		if !hasher.Verify(req.CurrentPassword, user.PasswordHash) {
			audit.Log(audit.PasswordEvent{
				UserID:       user.ID,
				ClientIP:     clientIP(r, s.Config()),
				Success:      false,
				ErrorMessage: "current password is incorrect",
			})
			respondWithMessage(w, http.StatusBadRequest, "current password is incorrect")
			return
		}

		hash, err := hasher.Hash(req.NewPassword)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "failed to update password")
			return
		}

		if err := usersStore.UpdatePassword(user.ID, hash); err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "failed to update password")
			return
		}

		audit.Log(audit.PasswordEvent{
			UserID:   user.ID,
			ClientIP: clientIP(r, s.Config()),
			Success:  true,
		})

		respondWithMessage(w, http.StatusOK, "Password updated successfully")
	}
}
