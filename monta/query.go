package monta

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query is an insertion-ordered list of query parameters. Keys may repeat,
// and each occurrence is sent.
type Query struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value string
}

// NewQuery returns an empty query
func NewQuery() *Query {
	return &Query{}
}

// Add appends key=value. Booleans render as "true"/"false".
func (q *Query) Add(key string, value any) *Query {
	q.params = append(q.params, queryParam{key: key, value: formatQueryValue(value)})
	return q
}

// AddIf appends key=value only when value is not empty
func (q *Query) AddIf(key, value string) *Query {
	if value == "" {
		return q
	}
	return q.Add(key, value)
}

// Len returns the number of parameters, counting repeats
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

// Get returns every value recorded for key, in order
func (q *Query) Get(key string) []string {
	if q == nil {
		return nil
	}
	var values []string
	for _, p := range q.params {
		if p.key == key {
			values = append(values, p.value)
		}
	}
	return values
}

// Encode renders the parameters in application/x-www-form-urlencoded form,
// keeping insertion order. A nil or empty query encodes to "".
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

func formatQueryValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
