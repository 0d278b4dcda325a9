package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muskhoops/FRETXPRESS/services/website-service/internal/contact"
	"github.com/Muskhoops/FRETXPRESS/shared/httpx"
)

type fakeRelay struct {
	sent []contact.Submission
	err  error
}

func (f *fakeRelay) Send(_ context.Context, s contact.Submission) error {
	f.sent = append(f.sent, s)
	return f.err
}

func newServer(t *testing.T, relay *fakeRelay) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(contact.NewService(relay, nil), 0).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, contentType string, body *bytes.Buffer) (int, map[string]any) {
	t.Helper()
	resp, err := srv.Client().Post(srv.URL+"/contact", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

const validJSON = `{"name":"Jean Dupont","company":"Dupont SARL","email":"jean@entreprise.fr","phone":"","message":"Devis svp"}`

func TestSubmitContact_JSON(t *testing.T) {
	relay := &fakeRelay{}
	srv := newServer(t, relay)

	status, body := post(t, srv, "application/json", bytes.NewBufferString(validJSON))
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["submitted"])
	assert.Equal(t, contact.SuccessMessage, body["message"])
	require.Len(t, relay.sent, 1)
	assert.Equal(t, "Dupont SARL", relay.sent[0].Company)
}

func TestSubmitContact_URLEncodedForm(t *testing.T) {
	relay := &fakeRelay{}
	srv := newServer(t, relay)

	form := url.Values{"name": {"Jean"}, "company": {"ACME"}, "email": {"jean@acme.fr"}, "message": {"Bonjour"}}
	status, body := post(t, srv, "application/x-www-form-urlencoded", bytes.NewBufferString(form.Encode()))
	require.Equal(t, http.StatusOK, status, body)
	require.Len(t, relay.sent, 1)
	assert.Equal(t, "ACME", relay.sent[0].Company)
}

func TestSubmitContact_MultipartForm(t *testing.T) {
	relay := &fakeRelay{}
	srv := newServer(t, relay)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Jean", "company": "ACME", "email": "jean@acme.fr", "message": "Bonjour", "phone": "+33 6"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	status, body := post(t, srv, mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusOK, status, body)
	require.Len(t, relay.sent, 1)
	assert.Equal(t, "+33 6", relay.sent[0].Phone)
}

func TestSubmitContact_MultipartBodyTooLarge(t *testing.T) {
	relay := &fakeRelay{}
	h := New(contact.NewService(relay, nil), 0).Routes()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Jean", "company": "ACME", "email": "jean@acme.fr", "message": "Bonjour"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("attachment", "devis.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), httpx.MaxBodyBytes+1024))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/contact", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, relay.sent)
}

func TestSubmitContact_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		relay  error
		status int
	}{
		{"missing message", `{"name":"Jean","company":"ACME","email":"jean@acme.fr"}`, nil, http.StatusBadRequest},
		{"bad email", `{"name":"Jean","company":"ACME","email":"jean","message":"x"}`, nil, http.StatusBadRequest},
		{"unknown field", `{"name":"Jean","website":"x"}`, nil, http.StatusBadRequest},
		{"relay rejected", validJSON, contact.ErrRelayRejected, http.StatusBadGateway},
		{"relay down", validJSON, contact.ErrRelayUnavailable, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, &fakeRelay{err: tt.relay})
			status, body := post(t, srv, "application/json", bytes.NewBufferString(tt.body))
			assert.Equal(t, tt.status, status, body)
			if tt.status == http.StatusBadGateway {
				assert.Equal(t, contact.FailureMessage, body["error"])
				assert.Equal(t, false, body["submitted"])
			}
		})
	}
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newServer(t, &fakeRelay{})

	resp, err := srv.Client().Get(srv.URL + "/services")
	require.NoError(t, err)
	defer resp.Body.Close()
	var list struct {
		Services []struct {
			Slug  string `json:"slug"`
			Title string `json:"title"`
		} `json:"services"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Services, 4)
	assert.Equal(t, "custom", list.Services[3].Slug)

	resp2, err := srv.Client().Get(srv.URL + "/services/nope")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)

	resp3, err := srv.Client().Get(srv.URL + "/contact")
	require.NoError(t, err)
	defer resp3.Body.Close()
	var info map[string]any
	require.NoError(t, json.NewDecoder(resp3.Body).Decode(&info))
	assert.True(t, strings.HasSuffix(info["email"].(string), "@fretxpress.com"))
}
