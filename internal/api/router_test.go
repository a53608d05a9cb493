package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestshield/forestshield-be/internal/auth"
	"github.com/forestshield/forestshield-be/internal/database"
	"github.com/forestshield/forestshield-be/internal/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })

	router := NewRouter(
		services.NewUserService(db),
		services.NewWeatherService(db),
		auth.NewManager("test-secret"),
		"http://localhost:3000",
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestBanner(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, string(body), "ForestShield")
}

func TestUserRegistrationAndLoginFlow(t *testing.T) {
	srv := newTestServer(t)

	// Register
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/usuarios", "", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "user", user["role"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "serialized user must not contain the password")
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash)

	// Duplicate registration
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/usuarios", "", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	// Login
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/usuarios/login", "", map[string]string{
		"email": "ana@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, ok := body["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	// Wrong password
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/usuarios/login", "", map[string]string{
		"email": "ana@x.com", "password": "nope",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	// Unknown email
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/usuarios/login", "", map[string]string{
		"email": "ghost@x.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListUsersOmitsSecrets(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/usuarios", "", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp, err := http.Get(srv.URL + "/api/usuarios")
	require.NoError(t, err)
	defer listResp.Body.Close()

	raw, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Len(t, users, 1)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "pw123")
}

func loginToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/usuarios", "", map[string]string{
		"name": "Ops", "email": "ops@x.com", "password": "opspw",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/usuarios/login", "", map[string]string{
		"email": "ops@x.com", "password": "opspw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestWeatherCreateAndList(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	payload := map[string]any{
		"zone": "north", "temperature": 31.5, "humidity": 40,
		"rainfall": "none", "wind": "12km/h",
	}

	// Creation is guarded
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/clima", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/clima", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "north", body["zone"])
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["timestamp"])

	listResp, err := http.Get(srv.URL + "/api/clima")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var records []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "north", records[0]["zone"])
	assert.Equal(t, 31.5, records[0]["temperature"])
	assert.Equal(t, 40.0, records[0]["humidity"])
	assert.Equal(t, "none", records[0]["rainfall"])
	assert.Equal(t, "12km/h", records[0]["wind"])
}

func TestWeatherCreateMissingFieldPersistsNothing(t *testing.T) {
	srv := newTestServer(t)
	token := loginToken(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/clima", token, map[string]any{
		"zone": "north", "temperature": 31.5,
		"rainfall": "none", "wind": "12km/h",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errMsg, _ := body["error"].(string)
	assert.Contains(t, errMsg, "humidity")

	listResp, err := http.Get(srv.URL + "/api/clima")
	require.NoError(t, err)
	defer listResp.Body.Close()

	var records []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&records))
	assert.Empty(t, records, "no record may be persisted after a validation failure")
}
