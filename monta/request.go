package monta

import (
	"fmt"
	"strings"
)

// Method is one of the four HTTP verbs the Monta API accepts
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ParseMethod converts a verb name into a Method. Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return m, nil
}

// Valid reports whether m is a supported verb
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	default:
		return false
	}
}

// HasBody reports whether requests with this verb may carry a payload
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodDelete
}

// String returns the verb as sent on the wire
func (m Method) String() string {
	return string(m)
}

// Request fully describes one outgoing exchange. Path is appended to the
// base URL as-is; no escaping or validation is applied to it.
type Request struct {
	Path   string
	Method Method
	Query  *Query
	Body   any
}

// Response is the outcome of an accepted exchange
type Response struct {
	StatusCode int
	Body       string
}
