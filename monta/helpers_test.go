package monta

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// sentRequest is what a transport was asked to send
type sentRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

type fakeResponse struct {
	status int
	body   []byte
}

func (r *fakeResponse) Body() []byte    { return r.body }
func (r *fakeResponse) StatusCode() int { return r.status }

// recordingTransport implements Transport without touching the network
type recordingTransport struct {
	mu       sync.Mutex
	requests []sentRequest
	status   int
	body     string
	err      error
}

func (t *recordingTransport) Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (TransportResponse, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, sentRequest{Method: method, URL: url, Headers: headers, Body: body})
	if t.err != nil {
		return nil, t.err
	}
	status := t.status
	if status == 0 {
		status = http.StatusOK
	}
	return &fakeResponse{status: status, body: []byte(t.body)}, nil
}

func (t *recordingTransport) last() sentRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests[len(t.requests)-1]
}

func newFakeClient(t *testing.T, transport *recordingTransport) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:  "https://api.example.test",
		Username: "user",
		Password: "secret",
	}, zerolog.Nop(), WithTransport(transport))
	require.NoError(t, err)
	return client
}

// serverRequest is what an httptest server received
type serverRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type testServer struct {
	*httptest.Server
	mu       sync.Mutex
	received []serverRequest
}

func (s *testServer) last() serverRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received[len(s.received)-1]
}

func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()
	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		ts.mu.Lock()
		ts.received = append(ts.received, serverRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     payload,
		})
		ts.mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newServerClient(t *testing.T, serverURL string, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:  serverURL,
		Username: "user",
		Password: "secret",
	}, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}
