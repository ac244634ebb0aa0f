package monta

import "context"

// GetHealth returns the health report of the Monta API
func (c *Client) GetHealth(ctx context.Context) (string, error) {
	return c.invoke(ctx, "getHealth", nil, nil, nil)
}

// GetInfo returns account and API information
func (c *Client) GetInfo(ctx context.Context) (string, error) {
	return c.invoke(ctx, "getInfo", nil, nil, nil)
}

// GetPurchaseOrderGroup retrieves purchase order groups created on creationDate
func (c *Client) GetPurchaseOrderGroup(ctx context.Context, creationDate string, page int) (string, error) {
	query := NewQuery().Add("creationDate", creationDate).Add("page", page)
	return c.invoke(ctx, "getPurchaseOrderGroup", nil, query, nil)
}

// ValidateAddress checks a shipping address
func (c *Client) ValidateAddress(ctx context.Context, address any) (string, error) {
	return c.invoke(ctx, "validateAddress", nil, nil, address)
}
