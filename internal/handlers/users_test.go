package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	r, _ := newServer()

	code, doc := do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})
	require.Equal(t, http.StatusOK, code)
	user := entity(t, doc, "user")
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.NotEmpty(t, user["date_created"])
	assert.NotEmpty(t, user["date_modified"])
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	r, _ := newServer()

	code, _ := do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})
	require.Equal(t, http.StatusOK, code)

	code, doc := do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Username already exists.", doc["message"])
}

func TestCreateUserMissingUsername(t *testing.T) {
	r, _ := newServer()
	code, doc := do(t, r, http.MethodPost, "/users", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required field: username", doc["message"])
}

func TestGetUserRoundTrip(t *testing.T) {
	r, _ := newServer()

	_, created := do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})
	code, fetched := do(t, r, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity(t, created, "user"), entity(t, fetched, "user"))
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := newServer()
	code, doc := do(t, r, http.MethodGet, "/users/999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User not found.", doc["message"])
}

func TestListUsers(t *testing.T) {
	r, _ := newServer()
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "bob"})

	code, doc := do(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, code)
	users, ok := doc["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].(map[string]any)["username"])
	assert.Equal(t, "bob", users[1].(map[string]any)["username"])
}

func TestUpdateUser(t *testing.T) {
	r, _ := newServer()
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})

	code, doc := do(t, r, http.MethodPut, "/users/1", map[string]any{"username": "alicia"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alicia", entity(t, doc, "user")["username"])

	_, fetched := do(t, r, http.MethodGet, "/users/1", nil)
	assert.Equal(t, "alicia", entity(t, fetched, "user")["username"])
}

func TestUpdateUserInvalidAttribute(t *testing.T) {
	r, _ := newServer()
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})

	code, doc := do(t, r, http.MethodPut, "/users/1", map[string]any{"nonexistent_field": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid attribute: nonexistent_field", doc["message"])

	// Nothing was persisted.
	_, fetched := do(t, r, http.MethodGet, "/users/1", nil)
	assert.Equal(t, "alice", entity(t, fetched, "user")["username"])
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	r, _ := newServer()
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "bob"})

	code, doc := do(t, r, http.MethodPut, "/users/2", map[string]any{"username": "alice"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Username already exists.", doc["message"])
}

func TestDeleteUser(t *testing.T) {
	r, _ := newServer()
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})

	code, doc := do(t, r, http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "User deleted.", doc["message"])

	code, _ = do(t, r, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, doc = do(t, r, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User not found.", doc["message"])
}

func TestUserProperty(t *testing.T) {
	r, _ := newServer()
	do(t, r, http.MethodPost, "/users", map[string]any{"username": "alice"})

	// "author" exists on posts and replies, not on users.
	code, doc := do(t, r, http.MethodGet, "/users/1/author", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid attribute: author", doc["message"])

	// Collection-valued relationships are recognized but not entity-shaped.
	code, doc = do(t, r, http.MethodGet, "/users/1/posts", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Attribute is not an entity: posts", doc["message"])

	code, doc = do(t, r, http.MethodGet, "/users/1/username", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Attribute is not an entity: username", doc["message"])
}
