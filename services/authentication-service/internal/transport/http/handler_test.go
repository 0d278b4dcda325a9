package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/app/commands"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/app/queries"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/infra/memory"
	"github.com/Muskhoops/FRETXPRESS/services/authentication-service/internal/ports/crypto"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	users := memory.NewUserStore()
	sessions := memory.NewSessionStore()
	auditLog := memory.NewAuditLog()
	hasher := crypto.NewArgon2Hasher(&crypto.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})

	login := commands.NewLoginUserHandler(users, sessions, auditLog, hasher, time.Hour).
		WithSleep(func(time.Duration) {})
	h := New(
		commands.NewRegisterUserHandler(users, auditLog, hasher),
		login,
		queries.NewCurrentUserHandler(users, sessions),
		0,
	)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func errorKind(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	k, _ := e["kind"].(string)
	return k
}

const amina = `{"account_type":"personal","email":"amina@example.dz","password":"secret","first_name":"Amina","last_name":"Haddad"}`

func TestRegisterLoginMe(t *testing.T) {
	srv := newServer(t)

	status, body := do(t, srv, http.MethodPost, "/auth/register", amina, "")
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "amina@example.dz", body["email"])
	assert.Equal(t, "Particulier", body["account_label"])
	assert.NotContains(t, body, "password")

	status, body = do(t, srv, http.MethodPost, "/auth/login", `{"email":"amina@example.dz","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Bearer", body["token_type"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, body = do(t, srv, http.MethodGet, "/auth/me", "", token)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Amina", body["first_name"])
}

func TestErrors(t *testing.T) {
	srv := newServer(t)
	status, _ := do(t, srv, http.MethodPost, "/auth/register", amina, "")
	require.Equal(t, http.StatusCreated, status)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
		status int
		kind   string
	}{
		{"duplicate email", http.MethodPost, "/auth/register", amina, "", http.StatusConflict, "conflict"},
		{"bad account type", http.MethodPost, "/auth/register", `{"account_type":"corp","email":"k@example.dz","password":"x","first_name":"K","last_name":"B"}`, "", http.StatusBadRequest, "bad_request"},
		{"bad email", http.MethodPost, "/auth/register", `{"account_type":"business","email":"nope","password":"x","first_name":"K","last_name":"B"}`, "", http.StatusBadRequest, "bad_request"},
		{"unknown field", http.MethodPost, "/auth/register", `{"account_type":"business","admin":true}`, "", http.StatusBadRequest, "bad_request"},
		{"blank password", http.MethodPost, "/auth/login", `{"email":"amina@example.dz","password":""}`, "", http.StatusBadRequest, "bad_request"},
		{"wrong password", http.MethodPost, "/auth/login", `{"email":"amina@example.dz","password":"nope"}`, "", http.StatusUnauthorized, "unauthenticated"},
		{"unknown email", http.MethodPost, "/auth/login", `{"email":"ghost@example.dz","password":"secret"}`, "", http.StatusUnauthorized, "unauthenticated"},
		{"no token", http.MethodGet, "/auth/me", "", "", http.StatusUnauthorized, "unauthenticated"},
		{"forged token", http.MethodGet, "/auth/me", "", "forged", http.StatusUnauthorized, "unauthenticated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, srv, tt.method, tt.path, tt.body, tt.token)
			assert.Equal(t, tt.status, status, body)
			assert.Equal(t, tt.kind, errorKind(body))
		})
	}
}

func TestUnknownAndWrongPasswordBodiesMatch(t *testing.T) {
	srv := newServer(t)
	do(t, srv, http.MethodPost, "/auth/register", amina, "")

	_, wrong := do(t, srv, http.MethodPost, "/auth/login", `{"email":"amina@example.dz","password":"nope"}`, "")
	_, unknown := do(t, srv, http.MethodPost, "/auth/login", `{"email":"ghost@example.dz","password":"nope"}`, "")
	assert.Equal(t, wrong, unknown)
}

func TestAccountTypes(t *testing.T) {
	srv := newServer(t)
	status, body := do(t, srv, http.MethodGet, "/auth/account-types", "", "")
	require.Equal(t, http.StatusOK, status)

	types, _ := body["account_types"].([]any)
	require.Len(t, types, 2)
	first, _ := types[0].(map[string]any)
	assert.Equal(t, "personal", first["type"])
	assert.Equal(t, "Particulier", first["title"])
}
