package monta

import "context"

func orderParams(webshopOrderID string) map[string]string {
	return map[string]string{"webshoporderid": webshopOrderID}
}

// GetOrder retrieves details about an order
func (c *Client) GetOrder(ctx context.Context, webshopOrderID string) (string, error) {
	return c.invoke(ctx, "getOrder", orderParams(webshopOrderID), nil, nil)
}

// GetUpdatedOrders retrieves orders with a changed status since date
func (c *Client) GetUpdatedOrders(ctx context.Context, date string) (string, error) {
	return c.invoke(ctx, "getUpdatedOrders", map[string]string{"date": date}, nil, nil)
}

// CreateRMALink creates an RMA link for an order
func (c *Client) CreateRMALink(ctx context.Context, webshopOrderID string) (string, error) {
	return c.invoke(ctx, "createRMALink", orderParams(webshopOrderID), nil, nil)
}

// CreateOrder creates an order
func (c *Client) CreateOrder(ctx context.Context, order any) (string, error) {
	return c.invoke(ctx, "createOrder", nil, nil, order)
}

// UpdateOrder updates an order
func (c *Client) UpdateOrder(ctx context.Context, webshopOrderID string, order any) (string, error) {
	return c.invoke(ctx, "updateOrder", orderParams(webshopOrderID), nil, order)
}

// DeleteOrder deletes an order
func (c *Client) DeleteOrder(ctx context.Context, webshopOrderID string) (string, error) {
	return c.invoke(ctx, "deleteOrder", orderParams(webshopOrderID), nil, nil)
}

// GetOrderReturnForecasts retrieves the return forecasts of an order
func (c *Client) GetOrderReturnForecasts(ctx context.Context, webshopOrderID string) (string, error) {
	return c.invoke(ctx, "getOrderReturnForecasts", orderParams(webshopOrderID), nil, nil)
}

// GetOrderReturnLabels retrieves the return labels of an order
func (c *Client) GetOrderReturnLabels(ctx context.Context, webshopOrderID string) (string, error) {
	return c.invoke(ctx, "getOrderReturnLabels", orderParams(webshopOrderID), nil, nil)
}

// GetOrderReturns retrieves the returns registered for an order
func (c *Client) GetOrderReturns(ctx context.Context, webshopOrderID string) (string, error) {
	return c.invoke(ctx, "getOrderReturns", orderParams(webshopOrderID), nil, nil)
}

// CreateOrderShippingLabels creates shipping labels for an order
func (c *Client) CreateOrderShippingLabels(ctx context.Context, webshopOrderID string, labels any) (string, error) {
	return c.invoke(ctx, "createOrderShippingLabels", orderParams(webshopOrderID), nil, labels)
}

// GetOrderShippingLabels retrieves the shipping labels of an order
func (c *Client) GetOrderShippingLabels(ctx context.Context, webshopOrderID string) (string, error) {
	return c.invoke(ctx, "getOrderShippingLabels", orderParams(webshopOrderID), nil, nil)
}
