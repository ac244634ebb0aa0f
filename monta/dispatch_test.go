package monta

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		query *Query
		want  string
	}{
		{
			name: "nil query keeps trailing separator",
			path: "health",
			want: "https://api.example.test/health?",
		},
		{
			name:  "empty query keeps trailing separator",
			path:  "info",
			query: NewQuery(),
			want:  "https://api.example.test/info?",
		},
		{
			name:  "query in insertion order",
			path:  "products/stock",
			query: NewQuery().Add("sku", "SKU1").Add("includeSplitStock", true),
			want:  "https://api.example.test/products/stock?sku=SKU1&includeSplitStock=true",
		},
		{
			name: "path passed through untouched",
			path: "inboundforecast/group/REF/ABC/123/false",
			want: "https://api.example.test/inboundforecast/group/REF/ABC/123/false?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildURL("https://api.example.test", tt.path, tt.query))
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	tests := []struct {
		username string
		password string
	}{
		{"user", "secret"},
		{"user:with:colons", "pa:ss"},
		{"jörg", "pässwörd€"},
		{"user", "ünïcødé 🔑"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			transport := &recordingTransport{}
			client, err := NewClient(Config{Username: tt.username, Password: tt.password}, zerolog.Nop(), WithTransport(transport))
			require.NoError(t, err)

			_, err = client.GetHealth(context.Background())
			require.NoError(t, err)

			header := transport.last().Headers["Authorization"]
			require.True(t, strings.HasPrefix(header, "Basic "))

			decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
			require.NoError(t, err)
			assert.Equal(t, tt.username+":"+tt.password, string(decoded))
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	transport := &recordingTransport{}
	client := newFakeClient(t, transport)

	for _, method := range []Method{MethodGet, MethodPost, MethodPut, MethodDelete} {
		_, err := client.Send(context.Background(), "order/1", nil, method, nil)
		require.NoError(t, err)

		sent := transport.last()
		assert.Equal(t, "application/json", sent.Headers["Content-Type"], method)
		assert.Equal(t, basicAuth("user", "secret"), sent.Headers["Authorization"], method)
		assert.Equal(t, method.String(), sent.Method)
	}
}

func TestRequestBodyEncoding(t *testing.T) {
	body := map[string]any{"WebshopOrderId": "1001", "Lines": []int{1, 2}}

	tests := []struct {
		name     string
		method   Method
		body     any
		wantBody string
	}{
		{name: "GET drops body", method: MethodGet, body: body},
		{name: "GET without body", method: MethodGet},
		{name: "POST encodes JSON", method: MethodPost, body: body, wantBody: `{"Lines":[1,2],"WebshopOrderId":"1001"}`},
		{name: "PUT encodes JSON", method: MethodPut, body: body, wantBody: `{"Lines":[1,2],"WebshopOrderId":"1001"}`},
		{name: "DELETE encodes JSON", method: MethodDelete, body: body, wantBody: `{"Lines":[1,2],"WebshopOrderId":"1001"}`},
		{name: "POST nil body", method: MethodPost},
		{name: "PUT nil body", method: MethodPut},
		{name: "DELETE nil body", method: MethodDelete},
		{name: "POST typed nil pointer", method: MethodPost, body: (*Request)(nil)},
		{name: "PUT nil map", method: MethodPut, body: map[string]any(nil)},
		{name: "POST nil raw message", method: MethodPost, body: json.RawMessage(nil)},
		{name: "POST empty map still encoded", method: MethodPost, body: map[string]any{}, wantBody: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &recordingTransport{}
			client := newFakeClient(t, transport)

			_, err := client.Send(context.Background(), "order", nil, tt.method, tt.body)
			require.NoError(t, err)

			sent := transport.last()
			if tt.wantBody == "" {
				assert.Nil(t, sent.Body)
				return
			}
			assert.JSONEq(t, tt.wantBody, string(sent.Body))
		})
	}
}

func TestRequestBodyOverHTTP(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{}`)
	client := newServerClient(t, server.URL)
	ctx := context.Background()

	_, err := client.Send(ctx, "order/1", nil, MethodGet, map[string]string{"ignored": "yes"})
	require.NoError(t, err)
	assert.Empty(t, server.last().Body)

	_, err = client.Send(ctx, "order/1", nil, MethodPut, map[string]string{"Comment": "hi"})
	require.NoError(t, err)
	got := server.last()
	assert.Equal(t, http.MethodPut, got.Method)
	assert.JSONEq(t, `{"Comment":"hi"}`, string(got.Body))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))

	_, err = client.Send(ctx, "order/1", nil, MethodDelete, nil)
	require.NoError(t, err)
	got = server.last()
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Empty(t, got.Body)
}

func TestUnencodableBody(t *testing.T) {
	transport := &recordingTransport{}
	client := newFakeClient(t, transport)

	_, err := client.Send(context.Background(), "order", nil, MethodPost, map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode request body")
	assert.Empty(t, transport.requests)
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{http.StatusOK, false},
		{http.StatusCreated, false},
		{http.StatusNoContent, false},
		{http.StatusNotFound, false},
		{http.StatusBadRequest, true},
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusConflict, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusAccepted, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			body := `{"Message":"status ` + http.StatusText(tt.status) + `"}`
			server := newTestServer(t, tt.status, body)
			client := newServerClient(t, server.URL)

			got, err := client.GetProduct(context.Background(), "SKU1")
			if !tt.wantErr {
				require.NoError(t, err)
				if tt.status != http.StatusNoContent {
					assert.Equal(t, body, got)
				}
				return
			}

			require.Error(t, err)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, body, apiErr.Body)
		})
	}
}

func TestDoResponseKeepsStatus(t *testing.T) {
	transport := &recordingTransport{status: http.StatusNotFound, body: `{"Message":"Product not found"}`}
	client := newFakeClient(t, transport)

	resp, err := client.DoResponse(context.Background(), Request{Path: "product/NOPE", Method: MethodGet})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"Message":"Product not found"}`, resp.Body)
}

func TestInvalidMethodRejected(t *testing.T) {
	transport := &recordingTransport{}
	client := newFakeClient(t, transport)

	for _, m := range []Method{"", "PATCH", "get", "OPTIONS"} {
		_, err := client.Do(context.Background(), Request{Path: "health", Method: m})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidMethod)
	}
	assert.Empty(t, transport.requests, "nothing may be sent for an invalid method")
}

func TestTransportFailure(t *testing.T) {
	t.Run("fake transport error", func(t *testing.T) {
		cause := errors.New("dial tcp: lookup api.example.test: no such host")
		transport := &recordingTransport{err: cause}
		client := newFakeClient(t, transport)

		_, err := client.GetHealth(context.Background())
		require.Error(t, err)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, MethodGet, transportErr.Method)
		assert.Equal(t, "https://api.example.test/health?", transportErr.URL)
		assert.ErrorIs(t, err, cause)

		_, isAPI := AsAPIError(err)
		assert.False(t, isAPI)
	})

	t.Run("closed server", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, "")
		url := server.URL
		server.Close()

		client := newServerClient(t, url)
		_, err := client.GetHealth(context.Background())

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, "")
		client := newServerClient(t, server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetHealth(ctx)
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
