// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the icon proxy core

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient performs the upstream icon API calls
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
