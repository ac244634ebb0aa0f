package monta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"time"
)

// acceptedStatus lists the codes returned to the caller as success. Monta
// answers 404 with an explanatory body when nothing matches a lookup.
var acceptedStatus = map[int]bool{
	http.StatusOK:        true,
	http.StatusCreated:   true,
	http.StatusNoContent: true,
	http.StatusNotFound:  true,
}

// Send performs one request and returns the raw response body.
func (c *Client) Send(ctx context.Context, path string, query *Query, method Method, body any) (string, error) {
	return c.Do(ctx, Request{
		Path:   path,
		Method: method,
		Query:  query,
		Body:   body,
	})
}

// Do performs one HTTP exchange described by req and classifies the status.
// Accepted responses return their body verbatim; anything else yields an
// *APIError, and a failed exchange yields a *TransportError.
func (c *Client) Do(ctx context.Context, req Request) (string, error) {
	resp, err := c.DoResponse(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Body, nil
}

// DoResponse is Do, keeping the status code so callers can tell an empty
// 404 lookup apart from a 200.
func (c *Client) DoResponse(ctx context.Context, req Request) (*Response, error) {
	if !req.Method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, string(req.Method))
	}

	payload, err := encodeBody(req.Method, req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	reqURL := buildURL(c.baseURL, req.Path, req.Query)
	start := time.Now()

	resp, err := c.transport.Do(ctx, req.Method.String(), reqURL, c.headers(), payload)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", req.Method.String()).
			Str("url", reqURL).
			Msg("Monta request failed")
		return nil, &TransportError{Method: req.Method, URL: reqURL, Err: err}
	}

	status := resp.StatusCode()
	body := string(resp.Body())

	c.logger.Debug().
		Str("method", req.Method.String()).
		Str("url", reqURL).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("Monta API request")

	if !acceptedStatus[status] {
		return nil, &APIError{
			StatusCode: status,
			Message:    http.StatusText(status),
			Body:       body,
		}
	}

	return &Response{StatusCode: status, Body: body}, nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{
		"Authorization": c.authHeader,
		"Content-Type":  "application/json",
	}
	if c.userAgent != "" {
		h["User-Agent"] = c.userAgent
	}
	return h
}

// buildURL joins base and path with a single slash and always appends "?",
// even when the query is empty.
func buildURL(baseURL, path string, query *Query) string {
	return baseURL + "/" + path + "?" + query.Encode()
}

// encodeBody returns the JSON payload for verbs that carry one. GET never
// sends a body, and a nil body sends nothing, typed nils included.
func encodeBody(method Method, body any) ([]byte, error) {
	if !method.HasBody() || isNilBody(body) {
		return nil, nil
	}
	return json.Marshal(body)
}

func isNilBody(body any) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
