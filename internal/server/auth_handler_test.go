package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pruthviraj/career-compass/internal/types"
)

func newTestAuthHandler() (*AuthHandler, *fakeUserStore) {
	store := newFakeUserStore()
	userService := NewUserService(store, testPasswordConfig())
	return NewAuthHandler(userService, testJWTService()), store
}

func postJSON(t *testing.T, body any) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	return buf
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, types.CreateUserRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
	}))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	claims, err := testJWTService().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, types.CreateUserRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "short",
	}))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := newTestAuthHandler()
	body := types.CreateUserRequest{Name: "Asha", Email: "asha@example.com", Password: "correct-horse"}

	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, body)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, _ := newTestAuthHandler()

	rec := httptest.NewRecorder()
	handler.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, types.CreateUserRequest{
		Name: "Asha", Email: "asha@example.com", Password: "correct-horse",
	})))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", postJSON(t, types.LoginRequest{
		Email: "asha@example.com", Password: "correct-horse",
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler, _ := newTestAuthHandler()

	rec := httptest.NewRecorder()
	handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", postJSON(t, types.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
