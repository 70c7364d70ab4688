package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/notes-in-go/pkg/model"
	"github.com/doodlesbykumbi/notes-in-go/pkg/password"
	"github.com/doodlesbykumbi/notes-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/notes-in-go/pkg/token"
)

func TestRegister_Success(t *testing.T) {
	srv, users, _ := newTestServer(t)

	users.On("CreateUser", mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*model.User)
			user.ID = "user-1"
			user.CreatedAt = time.Now()
		}).
		Return(nil)

	rec := doJSON(t, srv, http.MethodPost, "/auth/register", map[string]string{
		"name":            "Alice",
		"email":           "Alice@Example.com",
		"password":        "sup3r!pass",
		"confirmPassword": "sup3r!pass",
	}, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
	assert.Equal(t, "Alice", user["name"])
	// Email is stored and echoed lowercased.
	assert.Equal(t, "alice@example.com", user["email"])
	// The password never appears in the response.
	assert.NotContains(t, rec.Body.String(), "sup3r!pass")

	users.AssertExpectations(t)

	// The stored hash is a digest of the submitted password.
	created := users.Calls[0].Arguments.Get(0).(*model.User)
	assert.True(t, password.NewHasher().Verify("sup3r!pass", created.PasswordHash))
	assert.NotEqual(t, "sup3r!pass", created.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv, users, _ := newTestServer(t)

	users.On("CreateUser", mock.AnythingOfType("*model.User")).
		Return(store.ErrDuplicateUser)

	rec := doJSON(t, srv, http.MethodPost, "/auth/register", map[string]string{
		"name":            "Alice",
		"email":           "alice@example.com",
		"password":        "sup3r!pass",
		"confirmPassword": "sup3r!pass",
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email already registered", decodeBody(t, rec)["message"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		wantFields []string
	}{
		{
			name: "everything missing",
			body: map[string]string{},
			wantFields: []string{
				"name", "email", "password",
			},
		},
		{
			name: "name too short",
			body: map[string]string{
				"name":            "Al",
				"email":           "alice@example.com",
				"password":        "sup3r!pass",
				"confirmPassword": "sup3r!pass",
			},
			wantFields: []string{"name"},
		},
		{
			name: "name with digits",
			body: map[string]string{
				"name":            "Alice99",
				"email":           "alice@example.com",
				"password":        "sup3r!pass",
				"confirmPassword": "sup3r!pass",
			},
			wantFields: []string{"name"},
		},
		{
			name: "bad email",
			body: map[string]string{
				"name":            "Alice",
				"email":           "not-an-email",
				"password":        "sup3r!pass",
				"confirmPassword": "sup3r!pass",
			},
			wantFields: []string{"email"},
		},
		{
			name: "password without special character",
			body: map[string]string{
				"name":            "Alice",
				"email":           "alice@example.com",
				"password":        "password1",
				"confirmPassword": "password1",
			},
			wantFields: []string{"password"},
		},
		{
			name: "password mismatch",
			body: map[string]string{
				"name":            "Alice",
				"email":           "alice@example.com",
				"password":        "sup3r!pass",
				"confirmPassword": "different!pass",
			},
			wantFields: []string{"confirmPassword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, users, _ := newTestServer(t)

			rec := doJSON(t, srv, http.MethodPost, "/auth/register", tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			fields := fieldErrors(t, rec)
			for _, want := range tt.wantFields {
				assert.Contains(t, fields, want)
			}
			users.AssertNotCalled(t, "CreateUser", mock.Anything)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	srv, users, _ := newTestServer(t)

	hash, err := password.NewHasher().Hash("sup3r!pass")
	require.NoError(t, err)

	users.On("FindByEmail", "alice@example.com").Return(&model.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)

	rec := doJSON(t, srv, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "sup3r!pass",
	}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])

	// The issued token verifies and carries the user's ID.
	issuer := token.NewIssuer(testSigningSecret, time.Hour)
	claims, err := issuer.Verify(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	srv, users, _ := newTestServer(t)

	hash, err := password.NewHasher().Hash("sup3r!pass")
	require.NoError(t, err)

	users.On("FindByEmail", "alice@example.com").Return(&model.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)
	users.On("FindByEmail", "nobody@example.com").Return(nil, store.ErrUserNotFound)

	wrongPassword := doJSON(t, srv, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong!pass",
	}, "")
	unknownEmail := doJSON(t, srv, http.MethodPost, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong!pass",
	}, "")

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)

	// Same status, same message: the response must not reveal whether the
	// email is registered.
	assert.Equal(t,
		decodeBody(t, wrongPassword)["message"],
		decodeBody(t, unknownEmail)["message"],
	)
	assert.NotContains(t, wrongPassword.Body.String(), "token")
}

func TestUpdatePassword_Success(t *testing.T) {
	srv, users, _ := newTestServer(t)
	hasher := password.NewHasher()

	currentHash, err := hasher.Hash("old!pass")
	require.NoError(t, err)

	users.On("FindByID", "user-1").Return(&model.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: currentHash,
	}, nil)
	users.On("UpdatePassword", "user-1", mock.AnythingOfType("string")).Return(nil)

	rec := doJSON(t, srv, http.MethodPut, "/auth/update-password", map[string]string{
		"currentPassword": "old!pass",
		"newPassword":     "new!pass",
		"confirmPassword": "new!pass",
	}, bearerFor(t, "user-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password updated successfully", decodeBody(t, rec)["message"])

	// The stored value is a digest of the new password.
	users.AssertExpectations(t)
	newHash := users.Calls[1].Arguments.Get(1).(string)
	assert.True(t, hasher.Verify("new!pass", newHash))
}

func TestUpdatePassword_WrongCurrentPassword(t *testing.T) {
	srv, users, _ := newTestServer(t)

	currentHash, err := password.NewHasher().Hash("old!pass")
	require.NoError(t, err)

	users.On("FindByID", "user-1").Return(&model.User{
		ID:           "user-1",
		PasswordHash: currentHash,
	}, nil)

	rec := doJSON(t, srv, http.MethodPut, "/auth/update-password", map[string]string{
		"currentPassword": "not-the-old!pass",
		"newPassword":     "new!pass",
		"confirmPassword": "new!pass",
	}, bearerFor(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

func TestUpdatePassword_ConfirmMismatch(t *testing.T) {
	srv, users, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/auth/update-password", map[string]string{
		"currentPassword": "old!pass",
		"newPassword":     "new!pass",
		"confirmPassword": "other!pass",
	}, bearerFor(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldErrors(t, rec), "confirmPassword")
	users.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestUpdatePassword_RequiresAuth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/auth/update-password", map[string]string{
		"currentPassword": "old!pass",
		"newPassword":     "new!pass",
		"confirmPassword": "new!pass",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePassword_DeletedUser(t *testing.T) {
	srv, users, _ := newTestServer(t)

	users.On("FindByID", "user-gone").Return(nil, store.ErrUserNotFound)

	rec := doJSON(t, srv, http.MethodPut, "/auth/update-password", map[string]string{
		"currentPassword": "old!pass",
		"newPassword":     "new!pass",
		"confirmPassword": "new!pass",
	}, bearerFor(t, "user-gone"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
