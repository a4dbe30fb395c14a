package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shelfapi/internal/platform/crypto"
	"shelfapi/internal/user"
)

const testSecret = "test-secret-key-that-is-long-enough-1234"

type mockUserFinder struct {
	mock.Mock
}

func (m *mockUserFinder) GetByUsername(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func testUser(t *testing.T, password string) user.User {
	t.Helper()
	hashed, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return user.User{ID: 7, Username: "reader", HashedPassword: hashed, IsActive: true}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		finder := new(mockUserFinder)
		finder.On("GetByUsername", ctx, "reader").Return(testUser(t, "Password1!"), nil)
		svc := NewService(testSecret, 20*time.Minute, finder, nil)

		token, err := svc.Login(ctx, "reader", "Password1!")
		require.NoError(t, err)
		assert.Equal(t, "bearer", token.TokenType)
		assert.Equal(t, 1200, token.ExpiresIn)

		claims, err := crypto.ParseToken(testSecret, token.Token)
		require.NoError(t, err)
		assert.Equal(t, "reader", claims.Sub)
		assert.Equal(t, int64(7), claims.UserID)
		assert.NotEmpty(t, claims.ID)
		finder.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		finder := new(mockUserFinder)
		finder.On("GetByUsername", ctx, "reader").Return(testUser(t, "Password1!"), nil)
		svc := NewService(testSecret, time.Minute, finder, nil)

		_, err := svc.Login(ctx, "reader", "nope")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		finder := new(mockUserFinder)
		finder.On("GetByUsername", ctx, "ghost").Return(user.User{}, user.ErrNotFound)
		svc := NewService(testSecret, time.Minute, finder, nil)

		_, err := svc.Login(ctx, "ghost", "Password1!")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("lookup failure is not unauthorized", func(t *testing.T) {
		finder := new(mockUserFinder)
		finder.On("GetByUsername", ctx, "reader").Return(user.User{}, errors.New("db down"))
		svc := NewService(testSecret, time.Minute, finder, nil)

		_, err := svc.Login(ctx, "reader", "Password1!")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		svc := NewService(testSecret, 0, new(mockUserFinder), nil)
		assert.Equal(t, crypto.DefaultTokenTTL, svc.ttl)
	})
}

func postTokenForm(h *HTTPHandler, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.IssueToken(w, r)
	return w
}

func TestHTTPHandler_IssueToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		finder := new(mockUserFinder)
		finder.On("GetByUsername", mock.Anything, "reader").Return(testUser(t, "Password1!"), nil)
		h := NewHTTPHandler(NewService(testSecret, time.Minute, finder, nil))

		w := postTokenForm(h, url.Values{"username": {"reader"}, "password": {"Password1!"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

		var body struct {
			Success bool  `json:"success"`
			Data    Token `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "bearer", body.Data.TokenType)
		assert.NotEmpty(t, body.Data.Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		finder := new(mockUserFinder)
		finder.On("GetByUsername", mock.Anything, "reader").Return(testUser(t, "Password1!"), nil)
		h := NewHTTPHandler(NewService(testSecret, time.Minute, finder, nil))

		w := postTokenForm(h, url.Values{"username": {"reader"}, "password": {"wrong"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		finder := new(mockUserFinder)
		h := NewHTTPHandler(NewService(testSecret, time.Minute, finder, nil))

		w := postTokenForm(h, url.Values{"username": {"reader"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		finder.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})

	t.Run("internal error", func(t *testing.T) {
		finder := new(mockUserFinder)
		finder.On("GetByUsername", mock.Anything, "reader").Return(user.User{}, errors.New("db down"))
		h := NewHTTPHandler(NewService(testSecret, time.Minute, finder, nil))

		w := postTokenForm(h, url.Values{"username": {"reader"}, "password": {"Password1!"}})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
