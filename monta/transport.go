package monta

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// TransportResponse is the minimal view of an HTTP response the dispatcher needs
type TransportResponse interface {
	Body() []byte
	StatusCode() int
}

// Transport executes a single HTTP exchange. Implementations own all
// connection handling; the client never retries.
type Transport interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (TransportResponse, error)
}

// RestyTransport adapts resty.Client to the Transport interface.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a RestyTransport with the specified timeout.
// Cookies are neither stored nor replayed between calls.
func NewRestyTransport(timeout time.Duration) *RestyTransport {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	c.SetCookieJar(nil)
	return &RestyTransport{client: c}
}

// Do performs the request. A nil body sends no payload.
func (r *RestyTransport) Do(ctx context.Context, method, url string, headers map[string]string, body []byte) (TransportResponse, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the TransportResponse interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
