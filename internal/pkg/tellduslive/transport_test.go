package tellduslive

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveTransportGet(t *testing.T) {
	var gotAuth string
	var gotURL *url.URL

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotURL = r.URL
		_, _ = io.WriteString(w, `{"status":"success"}`)
	}))
	defer server.Close()

	transport := NewLiveTransport(Credentials{
		PublicKey:   "public",
		PrivateKey:  "private",
		Token:       "token",
		TokenSecret: "token-secret",
	}).WithBaseURL(server.URL)

	params := url.Values{}
	params.Set("id", "1")

	body, err := transport.Get("device/turnOn", params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success"}`, string(body))

	assert.Equal(t, "/device/turnOn", gotURL.Path)
	assert.Equal(t, "1", gotURL.Query().Get("id"))

	// Requests carry an OAuth1 signature for the four-part credential.
	assert.True(t, strings.HasPrefix(gotAuth, "OAuth "), "authorization header: %q", gotAuth)
	assert.Contains(t, gotAuth, `oauth_consumer_key="public"`)
	assert.Contains(t, gotAuth, `oauth_token="token"`)
}

func TestLiveTransportStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	transport := NewLiveTransport(Credentials{}).WithBaseURL(server.URL)

	_, err := transport.Get("devices/list", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestLiveTransportNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	transport := NewLiveTransport(Credentials{}).WithBaseURL(server.URL)

	_, err := transport.Get("devices/list", nil)
	assert.Error(t, err)
}
