// Package core contains the business logic of the Iconify proxy.
// It does not depend on any web framework or concrete HTTP client.
//
// The core package is organized into several sub-packages:
//
// - domain: upstream payload types and the icon asset
// - errors: validation and upstream error types
// - icons: the icon service relaying requests to the Iconify API
// - interfaces: contracts for the HTTP client, logger and services
// - picker: the declarative descriptor of the icon picker field
//
// Services receive their collaborators through interfaces.Dependencies:
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//	service := icons.NewService(deps, icons.DefaultBaseURL)
package core
