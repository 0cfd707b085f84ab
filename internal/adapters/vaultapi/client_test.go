package vaultapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/session-vault-cli/internal/domain"
	portmocks "github.com/bnema/session-vault-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleBundle() domain.SessionBundle {
	expiry := 1893456000.0
	return domain.SessionBundle{
		URL: "https://example.com/dashboard",
		Cookies: []domain.Cookie{
			{Domain: ".example.com", Name: "sid", Value: "abc", Path: "/", Secure: true, HTTPOnly: true, ExpirationDate: &expiry, SameSite: domain.SameSiteLax},
			{Domain: "example.com", Name: "pref", Value: "1", Session: true, HostOnly: true, StoreID: "0"},
		},
	}
}

func envelopeServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchSessionRoundTripsEncodedBundle(t *testing.T) {
	t.Parallel()

	want := sampleBundle()
	encoded, err := EncodeBundle(want)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/get-session", r.URL.Path)
		assert.Equal(t, "AB123_xyz", r.URL.Query().Get("sessionId"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"success":true,"data":{"compressedCookies":%q}}`, encoded)
	}))
	t.Cleanup(server.Close)

	client := &Client{Endpoint: server.URL + "/api/get-session", HTTPClient: server.Client()}

	got, err := client.FetchSession(context.Background(), "AB123_xyz")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "example.com", got.Domain())
}

func TestFetchSessionSendsBearerTokenFromSecretStore(t *testing.T) {
	t.Parallel()

	encoded, err := EncodeBundle(sampleBundle())
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = fmt.Fprintf(w, `{"success":true,"data":{"compressedCookies":%q}}`, encoded)
	}))
	t.Cleanup(server.Close)

	secrets := portmocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, TokenSecretKey).Return("tok-123\n", nil).Once()

	client := &Client{Endpoint: server.URL, HTTPClient: server.Client(), Secrets: secrets}

	_, err = client.FetchSession(context.Background(), "AB123_xyz")
	require.NoError(t, err)
}

func TestFetchSessionSkipsBearerTokenWhenMissing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	t.Cleanup(server.Close)

	secrets := portmocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, TokenSecretKey).Return("", domain.ErrSecretNotFound).Once()

	client := &Client{Endpoint: server.URL, HTTPClient: server.Client(), Secrets: secrets}

	_, err := client.FetchSession(context.Background(), "AB123_xyz")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestFetchSessionErrorMapping(t *testing.T) {
	t.Parallel()

	notBase64 := `{"success":true,"data":{"compressedCookies":"%%%not-base64"}}`
	notJSON := fmt.Sprintf(`{"success":true,"data":{"compressedCookies":%q}}`, base64.StdEncoding.EncodeToString([]byte("{broken")))
	wrongShape := fmt.Sprintf(`{"success":true,"data":{"compressedCookies":%q}}`, base64.StdEncoding.EncodeToString([]byte(`{"cookies":"nope"}`)))

	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "success false", status: http.StatusOK, body: `{"success":false}`, wantErr: domain.ErrSessionNotFound},
		{name: "success false with 404", status: http.StatusNotFound, body: `{"success":false,"error":"missing"}`, wantErr: domain.ErrSessionNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: domain.ErrNetwork},
		{name: "unreadable envelope", status: http.StatusOK, body: `<html>`, wantErr: domain.ErrNetwork},
		{name: "missing data", status: http.StatusOK, body: `{"success":true}`, wantErr: domain.ErrDecode},
		{name: "invalid base64", status: http.StatusOK, body: notBase64, wantErr: domain.ErrDecode},
		{name: "invalid json", status: http.StatusOK, body: notJSON, wantErr: domain.ErrDecode},
		{name: "schema mismatch", status: http.StatusOK, body: wrongShape, wantErr: domain.ErrDecode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := envelopeServer(t, tc.status, tc.body)
			client := &Client{Endpoint: server.URL, HTTPClient: server.Client()}

			_, err := client.FetchSession(context.Background(), "AB123_xyz")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFetchSessionTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	client := &Client{Endpoint: endpoint}

	_, err := client.FetchSession(context.Background(), "AB123_xyz")
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestFetchSessionRejectsNonHTTPEndpoint(t *testing.T) {
	t.Parallel()

	client := &Client{Endpoint: "ftp://example.com/get-session"}

	_, err := client.FetchSession(context.Background(), "AB123_xyz")
	require.Error(t, err)
	assert.ErrorContains(t, err, "http or https")
}

func TestDecodeBundleAcceptsNullExpiration(t *testing.T) {
	t.Parallel()

	raw := `{"url":"https://example.com","cookies":[{"domain":"example.com","name":"a","value":"1","expirationDate":null,"session":true}]}`

	bundle, err := DecodeBundle(base64.StdEncoding.EncodeToString([]byte(raw)))
	require.NoError(t, err)
	require.Len(t, bundle.Cookies, 1)
	assert.Nil(t, bundle.Cookies[0].ExpirationDate)
	assert.True(t, bundle.Cookies[0].Session)
}

func TestEncodeBundleRoundTripsEmptyCookieSets(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cookies []domain.Cookie
	}{
		{name: "nil", cookies: nil},
		{name: "empty", cookies: []domain.Cookie{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := EncodeBundle(domain.SessionBundle{URL: "https://example.com", Cookies: tc.cookies})
			require.NoError(t, err)

			bundle, err := DecodeBundle(encoded)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com", bundle.URL)
			assert.Empty(t, bundle.Cookies)
		})
	}
}

func TestBuildEndpointURLKeepsExistingQuery(t *testing.T) {
	t.Parallel()

	got, err := buildEndpointURL("https://vault.example/api/get-session?region=eu", "AB123_x y")
	require.NoError(t, err)
	assert.Equal(t, "https://vault.example/api/get-session?region=eu&sessionId=AB123_x+y", got)
}
