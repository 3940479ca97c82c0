package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folkers/internal/auth"
	"folkers/internal/model"
)

func issueTestToken(t *testing.T, tokens *auth.TokenService, username, role string) string {
	t.Helper()
	token, err := tokens.Issue(&model.User{ID: "u-1", Username: username, Role: role})
	require.NoError(t, err)
	return token
}

// Тест: валидный bearer-токен — пользователь попадает в контекст
func TestWithAuth_ValidTokenSetsUser(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, auth.RoleEditor, user.Role)
		w.WriteHeader(http.StatusOK)
	})

	h := WithAuth(tokens)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, tokens, "alice", "editor"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// Тест: без заголовка Authorization — терминальный 401
func TestWithAuth_MissingTokenRejected(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	called := false
	h := WithAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called, "handler must not run without a token")
}

// Тест: валидный токен без схемы Bearer — 401
func TestWithAuth_SchemelessHeaderRejected(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	h := WithAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without the Bearer scheme")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", issueTestToken(t, tokens, "alice", "editor"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// Тест: токен, подписанный другим секретом — 401
func TestWithAuth_WrongSecretRejected(t *testing.T) {
	issuer := auth.NewTokenService("secret-A", time.Hour)
	verifier := auth.NewTokenService("secret-B", time.Hour)

	h := WithAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a foreign token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, issuer, "mallory", "admin"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// Тест: истёкший токен — 401
func TestWithAuth_ExpiredTokenRejected(t *testing.T) {
	expired := auth.NewTokenService("test-secret", -time.Minute)
	verifier := auth.NewTokenService("test-secret", time.Hour)

	h := WithAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, expired, "alice", "watcher"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// Тест: RequireRole пропускает роль не ниже минимальной и режет остальных
func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	tests := []struct {
		name     string
		role     string
		min      auth.Role
		wantCode int
	}{
		{"watcher denied editor route", "watcher", auth.RoleEditor, http.StatusForbidden},
		{"editor allowed editor route", "editor", auth.RoleEditor, http.StatusOK},
		{"editor denied admin route", "editor", auth.RoleAdmin, http.StatusForbidden},
		{"admin allowed everywhere", "admin", auth.RoleWatcher, http.StatusOK},
		{"unknown role treated as watcher", "owner", auth.RoleEditor, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := WithAuth(tokens)(RequireRole(tt.min)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+issueTestToken(t, tokens, "user", tt.role))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

// Тест: RequireRole без WithAuth — 401, а не паника
func TestRequireRole_NoUserInContext(t *testing.T) {
	h := RequireRole(auth.RoleWatcher)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without an authenticated user")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
