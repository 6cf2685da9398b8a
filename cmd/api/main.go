// ABOUTME: Main entry point for the Iconify proxy API server
// ABOUTME: Wires together configuration, logging, the upstream client and the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iconify-proxy-api/api"
	"iconify-proxy-api/api/handlers"
	"iconify-proxy-api/api/middleware"
	"iconify-proxy-api/core/icons"
	"iconify-proxy-api/core/interfaces"
	stdhttp "iconify-proxy-api/infrastructure/http/standard"
	stdlogger "iconify-proxy-api/infrastructure/logger/standard"
	"iconify-proxy-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := stdlogger.NewStandardLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting Iconify proxy", map[string]interface{}{
		"endpoint":  handlers.EndpointID,
		"port":      cfg.Server.Port,
		"base_path": cfg.Server.BasePath,
		"upstream":  cfg.Upstream.BaseURL,
		"timeout":   cfg.Upstream.Timeout.String(),
	})

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Upstream.Timeout,
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{Logger: logger}),
		stdhttp.WithUserAgent(cfg.Upstream.UserAgent),
	)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	iconService := icons.NewService(deps, cfg.Upstream.BaseURL)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	handlers.NewIconHandler(iconService).RegisterRoutes(humaAPI)
	handlers.NewPickerHandler().RegisterRoutes(humaAPI)

	// No write timeout: upstream calls are bounded by the client timeout
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return
	}

	logger.Info("Server stopped", nil)
}
