package monta

import "context"

// GetSuppliers lists all suppliers
func (c *Client) GetSuppliers(ctx context.Context) (string, error) {
	return c.invoke(ctx, "getSuppliers", nil, nil, nil)
}

// GetSupplier retrieves a supplier by code
func (c *Client) GetSupplier(ctx context.Context, code string) (string, error) {
	return c.invoke(ctx, "getSupplier", map[string]string{"code": code}, nil, nil)
}

// CreateSupplier creates a supplier
func (c *Client) CreateSupplier(ctx context.Context, supplier any) (string, error) {
	return c.invoke(ctx, "createSupplier", nil, nil, supplier)
}

// UpdateSupplier updates the supplier with code
func (c *Client) UpdateSupplier(ctx context.Context, code string, supplier any) (string, error) {
	return c.invoke(ctx, "updateSupplier", map[string]string{"code": code}, nil, supplier)
}
