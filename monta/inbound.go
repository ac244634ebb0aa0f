package monta

import (
	"context"
	"strconv"
	"strings"
)

// GetInboundForecast retrieves an inbound forecast by group reference and SKU
func (c *Client) GetInboundForecast(ctx context.Context, reference, sku string) (string, error) {
	return c.invoke(ctx, "getInboundForecast", map[string]string{"reference": reference, "sku": sku}, nil, nil)
}

// GetInboundForecastGroup retrieves an inbound forecast group by reference
func (c *Client) GetInboundForecastGroup(ctx context.Context, reference string) (string, error) {
	return c.invoke(ctx, "getInboundForecastGroup", map[string]string{"reference": reference}, nil, nil)
}

// CreateInboundForecast adds an inbound forecast to the group with reference
func (c *Client) CreateInboundForecast(ctx context.Context, reference string, forecast any) (string, error) {
	return c.invoke(ctx, "createInboundForecast", map[string]string{"reference": reference}, nil, forecast)
}

// CreateInboundForecastGroup creates an inbound forecast group
func (c *Client) CreateInboundForecastGroup(ctx context.Context, group any) (string, error) {
	return c.invoke(ctx, "createInboundForecastGroup", nil, nil, group)
}

// UpdateInboundForecast updates an inbound forecast in a group. Monta cannot
// take a SKU containing "/" as a query value, so such SKUs are sent as path
// segments followed by the flag instead.
func (c *Client) UpdateInboundForecast(ctx context.Context, reference, sku string, forecast any, addQtyToExisting bool) (string, error) {
	if strings.Contains(sku, "/") {
		params := map[string]string{
			"reference":        reference,
			"sku":              sku,
			"addQtyToExisting": strconv.FormatBool(addQtyToExisting),
		}
		return c.invoke(ctx, "updateInboundForecastBySkuPath", params, nil, forecast)
	}

	query := NewQuery().
		Add("sku", sku).
		Add("addQtyToExisting", addQtyToExisting)
	return c.invoke(ctx, "updateInboundForecast", map[string]string{"reference": reference}, query, forecast)
}

// UpdateInboundForecastGroup updates an existing inbound forecast group
func (c *Client) UpdateInboundForecastGroup(ctx context.Context, reference string, group any) (string, error) {
	return c.invoke(ctx, "updateInboundForecastGroup", map[string]string{"reference": reference}, nil, group)
}

// DeleteInboundForecast deletes an inbound forecast from a group
func (c *Client) DeleteInboundForecast(ctx context.Context, reference, sku string) (string, error) {
	return c.invoke(ctx, "deleteInboundForecast", map[string]string{"reference": reference, "sku": sku}, nil, nil)
}

// DeleteInboundForecastGroup deletes a group with all its inbound forecasts
func (c *Client) DeleteInboundForecastGroup(ctx context.Context, reference string) (string, error) {
	return c.invoke(ctx, "deleteInboundForecastGroup", map[string]string{"reference": reference}, nil, nil)
}

// GetInbounds retrieves inbounds registered after sinceID
func (c *Client) GetInbounds(ctx context.Context, sinceID int64) (string, error) {
	return c.invoke(ctx, "getInbounds", nil, NewQuery().Add("sinceid", sinceID), nil)
}
