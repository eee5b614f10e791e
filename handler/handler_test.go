package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"screamer/domain"
	"screamer/store"
)

// callLog records collaborator calls across both fakes so tests can
// assert orchestration order.
type callLog struct {
	names []string
}

func (l *callLog) add(name string) {
	l.names = append(l.names, name)
}

type fakeStore struct {
	log     *callLog
	screams []domain.Scream
	listErr error
	addID   string
	addErr  error
	added   []domain.Scream
	users   map[string]domain.User
	setErr  error
	set     []domain.User
}

func (f *fakeStore) Screams(ctx context.Context) ([]domain.Scream, error) {
	f.log.add("store.Screams")
	return f.screams, f.listErr
}

func (f *fakeStore) AddScream(ctx context.Context, scream domain.Scream) (string, error) {
	f.log.add("store.AddScream")
	if f.addErr != nil {
		return "", f.addErr
	}
	f.added = append(f.added, scream)
	return f.addID, nil
}

func (f *fakeStore) GetUser(ctx context.Context, handle string) (domain.User, error) {
	f.log.add("store.GetUser")
	u, ok := f.users[handle]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) SetUser(ctx context.Context, user domain.User) error {
	f.log.add("store.SetUser")
	if f.setErr != nil {
		return f.setErr
	}
	f.set = append(f.set, user)
	return nil
}

type fakeIdentity struct {
	log       *callLog
	userID    string
	createErr error
	authErr   error
	token     string
	tokenErr  error
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, email, password string) (string, error) {
	f.log.add("identity.CreateAccount")
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.userID, nil
}

func (f *fakeIdentity) Authenticate(ctx context.Context, email, password string) (string, error) {
	f.log.add("identity.Authenticate")
	if f.authErr != nil {
		return "", f.authErr
	}
	return f.userID, nil
}

func (f *fakeIdentity) IssueToken(userID string) (string, error) {
	f.log.add("identity.IssueToken")
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return f.token, nil
}

func perform(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	m := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
