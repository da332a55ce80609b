package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *Service) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewService(newMemoryRepo(), NewTokenStore(client, time.Hour))
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

	r := chi.NewRouter()
	handler.MountRoutes(r)
	r.Group(func(r chi.Router) {
		r.Use(svc.RequireAuth)
		handler.MountProtectedRoutes(r)
	})
	return r, svc
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, payload)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "demo@vstmis.local", "password": "demo-mis-2024", "name": "Demo User",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "demo@vstmis.local", resp.User.Email)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{"email": "a@b.c"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email, password, and name are required", errorMessage(t, rec))

	rec = doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "a@b.c", "password": "short", "name": "A",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Password must be at least 6 characters", errorMessage(t, rec))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)
	body := map[string]string{"email": "demo@vstmis.local", "password": "demo-mis-2024", "name": "Demo User"}

	rec := doJSON(t, r, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email already registered", errorMessage(t, rec))
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "demo@vstmis.local", "password": "demo-mis-2024", "name": "Demo User",
	})

	rec := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "demo@vstmis.local", "password": "demo-mis-2024",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "demo@vstmis.local", "password": "wrong-pass",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid email or password", errorMessage(t, rec))

	rec = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{"email": "demo@vstmis.local"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email and password are required", errorMessage(t, rec))
}

func TestVerifyEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "demo@vstmis.local", "password": "demo-mis-2024", "name": "Demo User",
	})
	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doJSON(t, r, http.MethodGet, "/auth/verify", resp.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var verified userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verified))
	require.Equal(t, "Demo User", verified.User.Name)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/auth/verify", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Access token required", errorMessage(t, rec))

	rec = doJSON(t, r, http.MethodGet, "/auth/verify", "not-a-real-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid or expired token", errorMessage(t, rec))
}

func TestLogoutEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "demo@vstmis.local", "password": "demo-mis-2024", "name": "Demo User",
	})
	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doJSON(t, r, http.MethodPost, "/auth/logout", resp.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/auth/verify", resp.Token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
