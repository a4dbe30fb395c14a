package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfapi/internal/auth"
	"shelfapi/internal/book"
	"shelfapi/internal/config"
	"shelfapi/internal/platform/logger"
	"shelfapi/internal/testutil"
	"shelfapi/internal/todo"
	"shelfapi/internal/user"
)

const testSecret = "router-test-secret-0123456789abcdef"

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type memUsers struct {
	byName map[string]user.User
}

func (m *memUsers) Create(_ context.Context, u *user.User) error {
	if _, ok := m.byName[u.Username]; ok {
		return user.ErrAlreadyExists
	}
	u.ID = int64(len(m.byName) + 1)
	m.byName[u.Username] = *u
	return nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (user.User, error) {
	for _, u := range m.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

type memTodos struct {
	items map[int64]todo.Todo
	next  int64
}

func (m *memTodos) List(_ context.Context, ownerID int64) ([]todo.Todo, error) {
	out := []todo.Todo{}
	for _, t := range m.items {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTodos) Get(_ context.Context, ownerID, id int64) (todo.Todo, error) {
	t, ok := m.items[id]
	if !ok || t.OwnerID != ownerID {
		return todo.Todo{}, todo.ErrNotFound
	}
	return t, nil
}

func (m *memTodos) Create(_ context.Context, ownerID int64, f todo.Fields) (todo.Todo, error) {
	m.next++
	t := todo.Todo{ID: m.next, Title: f.Title, Description: f.Description, Priority: f.Priority, Complete: f.Complete, OwnerID: ownerID, DateCreated: time.Now()}
	m.items[t.ID] = t
	return t, nil
}

func (m *memTodos) Update(ctx context.Context, ownerID, id int64, f todo.Fields) (todo.Todo, error) {
	t, err := m.Get(ctx, ownerID, id)
	if err != nil {
		return todo.Todo{}, err
	}
	t.Title, t.Description, t.Priority, t.Complete = f.Title, f.Description, f.Priority, f.Complete
	m.items[id] = t
	return t, nil
}

func (m *memTodos) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := m.Get(ctx, ownerID, id); err != nil {
		return err
	}
	delete(m.items, id)
	return nil
}

func newTestRouter(t *testing.T, db Pinger) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20, AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.AuthConfig{JWTSecret: testSecret, TokenTTL: time.Minute},
	}
	log := logger.New(io.Discard, "error")

	users := user.NewService(&memUsers{byName: map[string]user.User{}}, log)
	return newRouter(routerDeps{
		cfg:    cfg,
		logger: log,
		db:     db,
		handlers: handlers{
			book: book.NewHTTPHandler(book.NewService(book.NewCollection(book.SeedData), log)),
			user: user.NewHTTPHandler(users),
			auth: auth.NewHTTPHandler(auth.NewService(testSecret, time.Minute, users, log)),
			todo: todo.NewHTTPHandler(todo.NewService(&memTodos{items: map[int64]todo.Todo{}}, log)),
		},
	})
}

func serve(router http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = serve(router, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	down := newTestRouter(t, fakePinger{err: errors.New("down")})
	w = serve(down, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_BooksLifecycle(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/books?books_to_return=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []book.Book `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list.Data, 2)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/books", nil))
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list.Data, 4)
	third := list.Data[2].ID.String()

	w = serve(router, httptest.NewRequest(http.MethodDelete, "/books/"+third, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book "+third+" has been deleted.")

	w = serve(router, httptest.NewRequest(http.MethodGet, "/books/"+third, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/books", nil))
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	assert.Len(t, list.Data, 3)
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodPatch, "/books", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "METHOD_NOT_ALLOWED")
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	for _, path := range []string{"/me", "/todos", "/todos/1"} {
		w := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	forged := testutil.GenerateTestToken(t, "some-other-secret-0123456789abcdef", "reader", 1)
	r := testutil.WithBearer(httptest.NewRequest(http.MethodGet, "/me", nil), forged)
	assert.Equal(t, http.StatusUnauthorized, serve(router, r).Code)
}

func TestRouter_RegisterLoginAndTodos(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	w := serve(router, httptest.NewRequest(http.MethodPost, "/create/user", strings.NewReader(
		`{"username":"reader","first_name":"Ada","last_name":"Reader","password":"Password1!"}`)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	form := url.Values{"username": {"reader"}, "password": {"Password1!"}}
	r := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = serve(router, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokenResp struct {
		Data auth.Token `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&tokenResp))
	token := tokenResp.Data.Token

	w = serve(router, testutil.WithBearer(httptest.NewRequest(http.MethodGet, "/me", nil), token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"reader"`)

	r = testutil.WithBearer(httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(`{"title":"Shelve","priority":2}`)), token)
	w = serve(router, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	r = testutil.WithBearer(httptest.NewRequest(http.MethodGet, "/todos/1", nil), token)
	assert.Equal(t, http.StatusOK, serve(router, r).Code)

	r = testutil.WithBearer(httptest.NewRequest(http.MethodDelete, "/todos/2", nil), token)
	assert.Equal(t, http.StatusNotFound, serve(router, r).Code)
}
