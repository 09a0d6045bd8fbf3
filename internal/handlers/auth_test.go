package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mtakagi/notes-api/internal/auth"
	"github.com/mtakagi/notes-api/internal/constants"
	"github.com/stretchr/testify/require"
)

func loginRequest(t *testing.T, env testEnv, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.SetBasicAuth(username, password)
	w := httptest.NewRecorder()

	env.router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)

	user := createTestUser(t, env, "alice", "pw123")

	w := loginRequest(t, env, "alice", "pw123")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response["token"])

	// The token resolves back to the same user
	resolved, err := env.authService.Authenticate(response["token"])
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)

	createTestUser(t, env, "alice", "pw123")

	w := loginRequest(t, env, "alice", "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotContains(t, w.Body.String(), "token")
}

func TestAuthHandler_LoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	w := loginRequest(t, env, "nobody", "pw123")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginWithoutCredentials(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
}

func TestAuthHandler_ExpiredTokenRejected(t *testing.T) {
	env := setupTestEnv(t)

	user := createTestUser(t, env, "alice", "pw123")

	// Issue a token that expired a minute ago with the same signing secret
	expiredTokens := auth.NewTokenManager([]byte("test-secret"), -time.Minute)
	expired, err := expiredTokens.Generate(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/1", nil)
	req.Header.Set(constants.TokenHeader, expired)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
