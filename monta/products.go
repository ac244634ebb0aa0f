package monta

import "context"

// GetProduct retrieves a single product by SKU
func (c *Client) GetProduct(ctx context.Context, sku string) (string, error) {
	return c.invoke(ctx, "getProduct", map[string]string{"sku": sku}, nil, nil)
}

// GetProductByBarcode retrieves a single product by barcode
func (c *Client) GetProductByBarcode(ctx context.Context, barcode string) (string, error) {
	return c.invoke(ctx, "getProductByBarcode", nil, NewQuery().Add("barcode", barcode), nil)
}

// GetProductsByPage retrieves one page of products
func (c *Client) GetProductsByPage(ctx context.Context, page int) (string, error) {
	return c.invoke(ctx, "getProductsByPage", nil, NewQuery().Add("page", page), nil)
}

// GetProductStock retrieves stock details of a product
func (c *Client) GetProductStock(ctx context.Context, sku string, includeSplitStock bool) (string, error) {
	query := NewQuery().
		Add("sku", sku).
		Add("includeSplitStock", includeSplitStock)
	return c.invoke(ctx, "getProductStock", nil, query, nil)
}

// GetUpdatedProducts retrieves products whose stock changed since date.
// The stock=1..10 filter is always sent.
func (c *Client) GetUpdatedProducts(ctx context.Context, date string) (string, error) {
	return c.invoke(ctx, "getUpdatedProducts", map[string]string{"date": date}, nil, nil)
}

// CreateProduct creates a product
func (c *Client) CreateProduct(ctx context.Context, product any) (string, error) {
	return c.invoke(ctx, "createProduct", nil, nil, product)
}

// CreateStockMutation changes the stock of a product
func (c *Client) CreateStockMutation(ctx context.Context, sku string, mutation any) (string, error) {
	return c.invoke(ctx, "createStockMutation", map[string]string{"sku": sku}, nil, mutation)
}

// UpdateProduct updates details of a product
func (c *Client) UpdateProduct(ctx context.Context, sku string, product any) (string, error) {
	return c.invoke(ctx, "updateProduct", map[string]string{"sku": sku}, nil, product)
}

// DeleteBarcode removes a single barcode from a product
func (c *Client) DeleteBarcode(ctx context.Context, sku, barcode string) (string, error) {
	return c.invoke(ctx, "deleteBarcode", map[string]string{"sku": sku, "barcode": barcode}, nil, nil)
}

// DeleteAllBarcodes removes every barcode from a product
func (c *Client) DeleteAllBarcodes(ctx context.Context, sku string) (string, error) {
	return c.invoke(ctx, "deleteAllBarcodes", map[string]string{"sku": sku}, nil, nil)
}

// DeleteProduct deletes a product
func (c *Client) DeleteProduct(ctx context.Context, sku string) (string, error) {
	return c.invoke(ctx, "deleteProduct", nil, NewQuery().Add("sku", sku), nil)
}
