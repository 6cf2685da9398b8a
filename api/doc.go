// Package api provides the HTTP layer of the Iconify proxy.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request binding and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and base path mounting
// - handlers/: icon proxy and picker descriptor handlers
// - middleware/: request logging and outbound request logging
//
// # Routes
//
// All routes live under the configured base path (default /iconify-proxy):
//
//	GET  /collections                 upstream collection list, verbatim
//	GET  /collection?prefix=mdi       one collection, verbatim
//	GET  /search?query=home&limit=20  search results, verbatim
//	GET  /icon/{collection}/{icon}    raw SVG markup
//	GET  /interface                   picker field descriptor
//	POST /interface/options           picker options with defaults applied
//
// The OpenAPI document is served at <base>/openapi.json and the docs UI at <base>/docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:   logger,
//	    BasePath: "/iconify-proxy",
//	})
//
//	handlers.NewIconHandler(iconService).RegisterRoutes(humaAPI)
//	handlers.NewPickerHandler().RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Failures are JSON objects rather than RFC 7807 problems:
//
//	{"error": "Prefix parameter is required"}
//	{"error": "Failed to fetch icon", "message": "API responded with status: 404"}
//
// Missing parameters and malformed bodies are 400; every upstream failure is 500.
package api
