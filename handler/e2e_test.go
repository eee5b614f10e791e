package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screamer/db"
	"screamer/identity"
	"screamer/store"
)

// End-to-end flows against the real SQLite-backed collaborators.

func realHandler(t *testing.T) Handler {
	t.Helper()
	conn, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(conn))

	return Handler{
		Store:    store.NewSQLite(conn),
		Identity: identity.NewLocal(conn, "test-secret"),
		Logger:   nopLogger(),
	}
}

func TestSignupFlow(t *testing.T) {
	h := realHandler(t)

	rec := perform(t, h.Signup, http.MethodPost, "/signup",
		`{"email":"a@b.com","password":"x","confirmPassword":"x","handle":"h1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, decodeMap(t, rec)["token"])

	// Same handle again, different email.
	rec = perform(t, h.Signup, http.MethodPost, "/signup",
		`{"email":"c@d.com","password":"x","confirmPassword":"x","handle":"h1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"handle": "This handle is already taken"}, decodeMap(t, rec))

	// Same email again, different handle.
	rec = perform(t, h.Signup, http.MethodPost, "/signup",
		`{"email":"a@b.com","password":"x","confirmPassword":"x","handle":"h2"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"email": "email already in use"}, decodeMap(t, rec))
}

func TestLoginFlow(t *testing.T) {
	h := realHandler(t)

	rec := perform(t, h.Signup, http.MethodPost, "/signup",
		`{"email":"a@b.com","password":"hunter2","confirmPassword":"hunter2","handle":"h1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = perform(t, h.Login, http.MethodPost, "/login", `{"email":"a@b.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeMap(t, rec)["token"])

	rec = perform(t, h.Login, http.MethodPost, "/login", `{"email":"a@b.com","password":"wrong"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, map[string]string{"general": "Wrong credentials, please try again"}, decodeMap(t, rec))
}

func TestScreamFlow(t *testing.T) {
	h := realHandler(t)

	rec := perform(t, h.NewScream, http.MethodPost, "/scream", `{"body":"hi","userHandle":"h1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	message := decodeMap(t, rec)["message"]
	assert.Contains(t, message, "created successfully")

	rec = perform(t, h.GetScreams, http.MethodGet, "/screams", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var screams []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &screams))
	require.Len(t, screams, 1)
	assert.Equal(t, "hi", screams[0]["body"])
	assert.Equal(t, "h1", screams[0]["userHandle"])
	id, ok := screams[0]["screamId"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Contains(t, message, id)
}
