// Package network provides a typed Go client for the UniFi Network Integration API.
//
// The Network Integration API is served locally by a UniFi console. It exposes
// sites, adopted devices, connected clients, device statistics, and device
// actions.
//
// # API Access
//
// The base URL is the integration root of your console:
//
//	https://<controller-ip>/proxy/network/integration
//
// Operation paths ("/v1/sites", "/v1/info", ...) are appended to it verbatim.
//
// # Authentication
//
// Every request carries a static API key in the X-API-KEY header:
//
//  1. Navigate to Settings > Control Plane > Integrations
//  2. Create a new API key
//  3. Pass it to New, NewWithConfig or Builder.APIKey
//
// # Basic Usage
//
//	client, err := network.New("https://192.168.1.1/proxy/network/integration", "your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sites, err := client.ListSites(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, site := range sites.Data {
//	    devices, err := client.ListDevices(ctx, site.ID, &network.PageParams{Limit: 100})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for _, device := range devices.Data {
//	        fmt.Printf("%s (%s) - %s\n", device.Name, device.Model, device.State)
//	    }
//	}
//
// # Pagination
//
// List operations return a single Page. Pass a nil *PageParams to get
// offset 0 and limit 25. The client never fetches further pages on its own.
//
// # Client Kinds
//
// ListClients returns ClientOverview values, a union over wired, wireless,
// VPN and Teleport clients:
//
//	switch v := c.Value().(type) {
//	case *network.WiredClientOverview:
//	    fmt.Println("wired", v.MacAddress)
//	case *network.WirelessClientOverview:
//	    fmt.Println("wireless", v.MacAddress)
//	default:
//	    fmt.Println(c.Type())
//	}
//
// # Error Handling
//
// Errors are built with github.com/cockroachdb/errors and fall into a closed set:
//
//   - ErrTransport: the request never produced a response
//   - *APIError: the server answered with a non-2xx status and an error envelope
//   - ErrMalformedURL: the base URL cannot be parsed
//   - ErrConfiguration: the client was built without a usable API key
//   - ErrDeserialization: a body did not have the expected shape
//
// Match them with errors.Is and errors.As:
//
//	var apiErr *network.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//	    // ...
//	}
//
// Nothing is retried.
//
// # TLS/SSL Certificates
//
// Certificates are verified by default. Consoles on a LAN usually present a
// self-signed certificate; disable verification explicitly:
//
//	client, err := network.NewBuilder(baseURL).
//	    APIKey(apiKey).
//	    VerifySSL(false).
//	    Build()
//
// # Contract
//
// GetSwagger returns the embedded OpenAPI document describing every
// endpoint, and ValidateResponseBody checks a raw body against one of its
// schemas.
package network
