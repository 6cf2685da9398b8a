// Package infrastructure holds the concrete implementations of the core interfaces.
//
// - http/standard: net/http based HTTPClient with configurable timeout, transport and user agent
// - logger/standard: logrus based Logger with optional lumberjack file rotation
package infrastructure
