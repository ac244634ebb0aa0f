package monta

import (
	"context"
	"strconv"
)

// MaxOrderEvents is the most events Monta returns per request
const MaxOrderEvents = 200

// GetOrderEvents fetches the order events after sinceID. The event with
// sinceID itself is excluded, so pass the last id already synchronised.
func (c *Client) GetOrderEvents(ctx context.Context, sinceID int64) (string, error) {
	return c.invoke(ctx, "getOrderEvents", map[string]string{"id": strconv.FormatInt(sinceID, 10)}, nil, nil)
}
