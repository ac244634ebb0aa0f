// Package monta provides a client for the Monta warehouse and fulfilment API.
//
// Every operation is one HTTPS exchange authenticated with HTTP Basic auth.
// Responses are returned as the raw JSON body; interpreting them is left to
// the caller.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := monta.NewClient(monta.Config{
//		Username: "user",
//		Password: "secret",
//	}, logger, monta.WithTimeout(30*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	body, err := client.GetProductStock(ctx, "SKU1", true)
//
// Operations not covered by a typed method can be run by catalog name:
//
//	body, err := client.Invoke(ctx, "getOrder", map[string]string{"webshoporderid": "1001"}, nil)
//
// # Status handling
//
// 200, 201, 204 and 404 are returned as success; Monta uses 404 with an
// explanatory body when a lookup matches nothing. Use DoResponse to see the
// status code. Any other status yields an *APIError carrying the code and
// body. A request that never got a response yields a *TransportError.
//
//	if apiErr, ok := monta.AsAPIError(err); ok && apiErr.IsUnauthorized() {
//		// Handle auth failure
//	}
//
// # Request shape
//
// The URL is always baseURL + "/" + path + "?" + query, so a request without
// query parameters still ends in "?". GET requests never carry a body; POST,
// PUT and DELETE bodies are JSON encoded. Every request sends
// Content-Type: application/json.
package monta
