package monta

import (
	"context"
	"strconv"
)

// CreateReturnForecast creates a return forecast
func (c *Client) CreateReturnForecast(ctx context.Context, forecast any) (string, error) {
	return c.invoke(ctx, "createReturnForecast", nil, nil, forecast)
}

// UpdateReturnForecast updates a return forecast
func (c *Client) UpdateReturnForecast(ctx context.Context, forecast any) (string, error) {
	return c.invoke(ctx, "updateReturnForecast", nil, nil, forecast)
}

// GetReturnForecast retrieves a previously created return forecast by code
func (c *Client) GetReturnForecast(ctx context.Context, code string) (string, error) {
	return c.invoke(ctx, "getReturnForecast", map[string]string{"code": code}, nil, nil)
}

// CreateReturnLabel creates a return label
func (c *Client) CreateReturnLabel(ctx context.Context, label any) (string, error) {
	return c.invoke(ctx, "createReturnLabel", nil, nil, label)
}

// GetReturnsSinceID retrieves returns registered after id
func (c *Client) GetReturnsSinceID(ctx context.Context, id int64) (string, error) {
	return c.invoke(ctx, "getReturnsSinceID", map[string]string{"id": strconv.FormatInt(id, 10)}, nil, nil)
}

// GetUpdatedReturns retrieves returns changed since date
func (c *Client) GetUpdatedReturns(ctx context.Context, date string) (string, error) {
	return c.invoke(ctx, "getUpdatedReturns", map[string]string{"date": date}, nil, nil)
}

// UpdateReturnFollowUp sets the follow-up action of a return
func (c *Client) UpdateReturnFollowUp(ctx context.Context, returnID int64, action string, details any) (string, error) {
	params := map[string]string{
		"id":     strconv.FormatInt(returnID, 10),
		"action": action,
	}
	return c.invoke(ctx, "updateReturnFollowUp", params, nil, details)
}
