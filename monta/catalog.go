package monta

import (
	"context"
	"fmt"
	"strings"
)

// Operation describes one named Monta API capability: its verb, its path
// template with {placeholders}, the query keys it accepts, and whether it
// takes a JSON body.
type Operation struct {
	Name        string       `json:"name" yaml:"name"`
	Domain      string       `json:"domain" yaml:"domain"`
	Method      Method       `json:"method" yaml:"method"`
	Path        string       `json:"path" yaml:"path"`
	Query       []string     `json:"query,omitempty" yaml:"query,omitempty"`
	Fixed       []FixedParam `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Body        bool         `json:"body" yaml:"body"`
	Description string       `json:"description" yaml:"description"`
}

// FixedParam is a query parameter an operation always sends
type FixedParam struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Domains in the catalog
const (
	DomainGeneral       = "general"
	DomainProduct       = "product"
	DomainOrder         = "order"
	DomainPurchaseOrder = "purchaseorder"
	DomainAddress       = "address"
	DomainInbound       = "inbound"
	DomainReturn        = "return"
	DomainSupplier      = "supplier"
	DomainEvent         = "event"
	DomainReport        = "report"
)

// stockFilter is sent by getUpdatedProducts on every call
var stockFilter = func() []FixedParam {
	params := make([]FixedParam, 0, 10)
	for i := 1; i <= 10; i++ {
		params = append(params, FixedParam{Key: "stock", Value: fmt.Sprint(i)})
	}
	return params
}()

var catalog = []Operation{
	{Name: "getHealth", Domain: DomainGeneral, Method: MethodGet, Path: "health", Description: "Health of the Monta API"},
	{Name: "getInfo", Domain: DomainGeneral, Method: MethodGet, Path: "info", Description: "Account and API information"},

	{Name: "getProduct", Domain: DomainProduct, Method: MethodGet, Path: "product/{sku}", Description: "Single product by SKU"},
	{Name: "getProductByBarcode", Domain: DomainProduct, Method: MethodGet, Path: "product", Query: []string{"barcode"}, Description: "Single product by barcode"},
	{Name: "getProductsByPage", Domain: DomainProduct, Method: MethodGet, Path: "products", Query: []string{"page"}, Description: "Page of products"},
	{Name: "getProductStock", Domain: DomainProduct, Method: MethodGet, Path: "products/stock", Query: []string{"sku", "includeSplitStock"}, Description: "Stock details of a product"},
	{Name: "getUpdatedProducts", Domain: DomainProduct, Method: MethodGet, Path: "product/updated_since/{date}", Fixed: stockFilter, Description: "Products with changed stock since a date"},
	{Name: "createProduct", Domain: DomainProduct, Method: MethodPost, Path: "product", Body: true, Description: "Create a product"},
	{Name: "createStockMutation", Domain: DomainProduct, Method: MethodPost, Path: "product/{sku}/stockmutations", Body: true, Description: "Change stock with a stock mutation"},
	{Name: "updateProduct", Domain: DomainProduct, Method: MethodPut, Path: "product/{sku}", Body: true, Description: "Update product details"},
	{Name: "deleteBarcode", Domain: DomainProduct, Method: MethodDelete, Path: "product/{sku}/barcode/{barcode}", Description: "Delete one barcode from a product"},
	{Name: "deleteAllBarcodes", Domain: DomainProduct, Method: MethodDelete, Path: "product/{sku}/barcode", Description: "Delete all barcodes from a product"},
	{Name: "deleteProduct", Domain: DomainProduct, Method: MethodDelete, Path: "product", Query: []string{"sku"}, Description: "Delete a product"},

	{Name: "getOrder", Domain: DomainOrder, Method: MethodGet, Path: "order/{webshoporderid}", Description: "Order details"},
	{Name: "getUpdatedOrders", Domain: DomainOrder, Method: MethodGet, Path: "order/updated_since/{date}", Description: "Orders with a changed status since a date"},
	{Name: "createRMALink", Domain: DomainOrder, Method: MethodGet, Path: "order/{webshoporderid}/rmalinks", Description: "RMA link for an order"},
	{Name: "createOrder", Domain: DomainOrder, Method: MethodPost, Path: "order", Body: true, Description: "Create an order"},
	{Name: "updateOrder", Domain: DomainOrder, Method: MethodPut, Path: "order/{webshoporderid}", Body: true, Description: "Update an order"},
	{Name: "deleteOrder", Domain: DomainOrder, Method: MethodDelete, Path: "order/{webshoporderid}", Description: "Delete an order"},
	{Name: "getOrderReturnForecasts", Domain: DomainOrder, Method: MethodGet, Path: "order/{webshoporderid}/returnforecasts", Description: "Return forecasts of an order"},
	{Name: "getOrderReturnLabels", Domain: DomainOrder, Method: MethodGet, Path: "order/{webshoporderid}/returnlabels", Description: "Return labels of an order"},
	{Name: "getOrderReturns", Domain: DomainOrder, Method: MethodGet, Path: "order/{webshoporderid}/returns", Description: "Returns registered for an order"},
	{Name: "createOrderShippingLabels", Domain: DomainOrder, Method: MethodPost, Path: "order/{webshoporderid}/shippinglabels", Body: true, Description: "Create shipping labels for an order"},
	{Name: "getOrderShippingLabels", Domain: DomainOrder, Method: MethodGet, Path: "order/{webshoporderid}/shippinglabels", Description: "Shipping labels of an order"},

	{Name: "getPurchaseOrderGroup", Domain: DomainPurchaseOrder, Method: MethodGet, Path: "purchaseordergroup", Query: []string{"creationDate", "page"}, Description: "Purchase order groups by creation date"},
	{Name: "validateAddress", Domain: DomainAddress, Method: MethodPost, Path: "address", Body: true, Description: "Validate a shipping address"},

	{Name: "getInboundForecast", Domain: DomainInbound, Method: MethodGet, Path: "inboundforecast/group/{reference}/{sku}", Description: "Inbound forecast by group reference and SKU"},
	{Name: "getInboundForecastGroup", Domain: DomainInbound, Method: MethodGet, Path: "inboundforecast/group/{reference}", Description: "Inbound forecast group by reference"},
	{Name: "createInboundForecast", Domain: DomainInbound, Method: MethodPost, Path: "inboundforecast/group/{reference}", Body: true, Description: "Add an inbound forecast to a group"},
	{Name: "createInboundForecastGroup", Domain: DomainInbound, Method: MethodPost, Path: "inboundforecast/group", Body: true, Description: "Create an inbound forecast group"},
	{Name: "updateInboundForecast", Domain: DomainInbound, Method: MethodPut, Path: "inboundforecast/group/{reference}", Query: []string{"sku", "addQtyToExisting"}, Body: true, Description: "Update an inbound forecast in a group"},
	{Name: "updateInboundForecastBySkuPath", Domain: DomainInbound, Method: MethodPut, Path: "inboundforecast/group/{reference}/{sku}/{addQtyToExisting}", Body: true, Description: "Update an inbound forecast whose SKU contains a slash"},
	{Name: "updateInboundForecastGroup", Domain: DomainInbound, Method: MethodPut, Path: "inboundforecast/group/{reference}", Body: true, Description: "Update an inbound forecast group"},
	{Name: "deleteInboundForecast", Domain: DomainInbound, Method: MethodDelete, Path: "inboundforecast/group/{reference}/{sku}", Description: "Delete an inbound forecast from a group"},
	{Name: "deleteInboundForecastGroup", Domain: DomainInbound, Method: MethodDelete, Path: "inboundforecast/group/{reference}", Description: "Delete a group with all its forecasts"},
	{Name: "getInbounds", Domain: DomainInbound, Method: MethodGet, Path: "inbounds", Query: []string{"sinceid"}, Description: "Inbounds after an id"},

	{Name: "createReturnForecast", Domain: DomainReturn, Method: MethodPost, Path: "returnforecast", Body: true, Description: "Create a return forecast"},
	{Name: "updateReturnForecast", Domain: DomainReturn, Method: MethodPut, Path: "returnforecast", Body: true, Description: "Update a return forecast"},
	{Name: "getReturnForecast", Domain: DomainReturn, Method: MethodGet, Path: "returnforecast/{code}", Description: "Return forecast by code"},
	{Name: "createReturnLabel", Domain: DomainReturn, Method: MethodPost, Path: "returnlabel", Body: true, Description: "Create a return label"},
	{Name: "getReturnsSinceID", Domain: DomainReturn, Method: MethodGet, Path: "returns/since_id/{id}", Description: "Returns after an id"},
	{Name: "getUpdatedReturns", Domain: DomainReturn, Method: MethodGet, Path: "returns/updated_since/{date}", Description: "Returns changed since a date"},
	{Name: "updateReturnFollowUp", Domain: DomainReturn, Method: MethodPut, Path: "returns/{id}/followup/{action}", Body: true, Description: "Set the follow-up action of a return"},

	{Name: "getSuppliers", Domain: DomainSupplier, Method: MethodGet, Path: "supplier", Description: "All suppliers"},
	{Name: "getSupplier", Domain: DomainSupplier, Method: MethodGet, Path: "supplier/{code}", Description: "Supplier by code"},
	{Name: "createSupplier", Domain: DomainSupplier, Method: MethodPost, Path: "supplier", Body: true, Description: "Create a supplier"},
	{Name: "updateSupplier", Domain: DomainSupplier, Method: MethodPut, Path: "supplier/{code}", Body: true, Description: "Update a supplier"},

	{Name: "getOrderEvents", Domain: DomainEvent, Method: MethodGet, Path: "orderevents/since_id/{id}", Description: "Up to 200 order events after an id, excluding it"},

	{Name: "getReports", Domain: DomainReport, Method: MethodGet, Path: "reports", Query: []string{"createdAfter"}, Description: "Available reports"},
	{Name: "getReport", Domain: DomainReport, Method: MethodGet, Path: "reports/{id}", Description: "Single report"},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, op := range catalog {
		idx[op.Name] = i
	}
	return idx
}()

// Catalog returns a copy of every operation, in catalog order
func Catalog() []Operation {
	ops := make([]Operation, len(catalog))
	copy(ops, catalog)
	return ops
}

// LookupOperation finds an operation by name
func LookupOperation(name string) (Operation, error) {
	i, ok := catalogIndex[name]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return catalog[i], nil
}

// Placeholders returns the names of the {placeholders} in the path template
func (op Operation) Placeholders() []string {
	var names []string
	rest := op.Path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[open+1:open+end])
		rest = rest[open+end+1:]
	}
}

// Expand fills the path template. Values are inserted verbatim, so a value
// containing "/" adds path segments.
func (op Operation) Expand(params map[string]string) (string, error) {
	var sb strings.Builder
	rest := op.Path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		name := rest[open+1 : open+end]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: %s needs {%s}", ErrMissingParam, op.Name, name)
		}
		sb.WriteString(rest[:open])
		sb.WriteString(value)
		rest = rest[open+end+1:]
	}
}

// Invoke runs any catalog operation by name. Placeholders are taken from
// params, as are the operation's declared query keys (in declared order);
// undeclared keys are ignored. body is dropped for operations without one.
// A forecast update whose SKU contains "/" is sent with the SKU in the path,
// as UpdateInboundForecast does.
func (c *Client) Invoke(ctx context.Context, name string, params map[string]string, body any) (string, error) {
	op, err := LookupOperation(name)
	if err != nil {
		return "", err
	}
	op, params = routeSkuPath(op, params)

	query := NewQuery()
	for _, key := range op.Query {
		if v, ok := params[key]; ok {
			query.Add(key, v)
		}
	}
	if !op.Body {
		body = nil
	}

	return c.call(ctx, op, params, query, body)
}

// routeSkuPath swaps updateInboundForecast for its SKU-in-path variant when
// the SKU contains "/". addQtyToExisting defaults to false in the path.
func routeSkuPath(op Operation, params map[string]string) (Operation, map[string]string) {
	if op.Name != "updateInboundForecast" || !strings.Contains(params["sku"], "/") {
		return op, params
	}
	routed := make(map[string]string, len(params)+1)
	for k, v := range params {
		routed[k] = v
	}
	if _, ok := routed["addQtyToExisting"]; !ok {
		routed["addQtyToExisting"] = "false"
	}
	return catalog[catalogIndex["updateInboundForecastBySkuPath"]], routed
}

// invoke runs a catalog operation for the typed methods
func (c *Client) invoke(ctx context.Context, name string, params map[string]string, query *Query, body any) (string, error) {
	op, err := LookupOperation(name)
	if err != nil {
		return "", err
	}
	return c.call(ctx, op, params, query, body)
}

func (c *Client) call(ctx context.Context, op Operation, params map[string]string, query *Query, body any) (string, error) {
	path, err := op.Expand(params)
	if err != nil {
		return "", err
	}

	if len(op.Fixed) > 0 {
		if query == nil {
			query = NewQuery()
		}
		for _, p := range op.Fixed {
			query.Add(p.Key, p.Value)
		}
	}

	return c.Do(ctx, Request{
		Path:   path,
		Method: op.Method,
		Query:  query,
		Body:   body,
	})
}
