package monta

import "context"

// GetReports lists available reports. createdAfter is optional.
func (c *Client) GetReports(ctx context.Context, createdAfter string) (string, error) {
	return c.invoke(ctx, "getReports", nil, NewQuery().AddIf("createdAfter", createdAfter), nil)
}

// GetReport retrieves a single report
func (c *Client) GetReport(ctx context.Context, id string) (string, error) {
	return c.invoke(ctx, "getReport", map[string]string{"id": id}, nil, nil)
}
