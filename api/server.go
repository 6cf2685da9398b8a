// ABOUTME: Huma API server configuration and setup
// ABOUTME: Mounts the proxy under its base path with CORS, request logging and OpenAPI docs

package api

import (
	"net/http"

	"iconify-proxy-api/api/middleware"
	"iconify-proxy-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle       = "Iconify Proxy API"
	apiVersion     = "1.0.0"
	apiDescription = "Read-only proxy to the Iconify icon API and descriptor of the icon picker field"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	BasePath       string   // e.g. /iconify-proxy; empty mounts at the root
	AllowedOrigins []string // defaults to all origins
}

// NewAPI creates a Huma API mounted at the root without request logging
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// The returned router is the root handler; the API's routes live under cfg.BasePath.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS should be first
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	mount := chi.Router(router)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		sub := chi.NewRouter()
		router.Mount(cfg.BasePath, sub)
		mount = sub
		config.Servers = []*huma.Server{{URL: cfg.BasePath}}
	}

	// /openapi.json and /docs are served relative to the mount point
	api := humachi.New(mount, config)

	return api, router
}
