package tellduslive

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/pkg/errors"
)

const apiURL = "https://api.telldus.com/json/"

// Every call carries the same fixed timeout; there is no cancellation
// beyond it.
const requestTimeout = 5 * time.Second

// Credentials is the four-part OAuth1 credential issued by the
// Telldus Live API portal.
type Credentials struct {
	PublicKey   string
	PrivateKey  string
	Token       string
	TokenSecret string
}

// LiveTransport signs GET requests with an account's OAuth1 credential
// and sends them to the production Telldus Live endpoint.
type LiveTransport struct {
	baseURL    string
	httpClient *http.Client
}

func NewLiveTransport(creds Credentials) *LiveTransport {
	config := oauth1.NewConfig(creds.PublicKey, creds.PrivateKey)
	token := oauth1.NewToken(creds.Token, creds.TokenSecret)

	httpClient := config.Client(oauth1.NoContext, token)
	httpClient.Timeout = requestTimeout

	return &LiveTransport{
		baseURL:    apiURL,
		httpClient: httpClient,
	}
}

// WithBaseURL returns a copy of the transport aimed at a different
// endpoint (test servers, mostly).
func (t *LiveTransport) WithBaseURL(base string) *LiveTransport {
	nt := *t
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	nt.baseURL = base
	return &nt
}

// Get performs one signed GET and returns the raw body. Network
// failures, timeouts and non-2xx statuses all come back as errors.
func (t *LiveTransport) Get(path string, params url.Values) ([]byte, error) {
	u := t.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	resp, err := t.httpClient.Get(u)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode >= 300 {
		return nil, errors.Errorf("api error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
