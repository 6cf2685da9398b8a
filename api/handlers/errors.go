// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain and request validation errors to the proxy's {error, message} JSON responses

package handlers

import (
	"net/http"
	"strings"

	"iconify-proxy-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

func init() {
	// huma's own request errors (unparseable or schema-invalid input) use the same shape
	huma.NewError = newRequestError
}

// ErrorResponse is the JSON body of every failed request.
// It implements huma.StatusError so huma writes it with the right status.
type ErrorResponse struct {
	status  int
	Title   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	if e.Message == "" {
		return e.Title
	}
	return e.Title + ": " + e.Message
}

// GetStatus returns the HTTP status code
func (e *ErrorResponse) GetStatus() int {
	return e.status
}

// Schema describes the error body inline in the OpenAPI document
func (e *ErrorResponse) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: huma.TypeObject,
		Properties: map[string]*huma.Schema{
			"error":   {Type: huma.TypeString, Description: "Short description of the failure"},
			"message": {Type: huma.TypeString, Description: "Cause of the failure, when known"},
		},
		Required: []string{"error"},
	}
}

// NewErrorResponse creates an error response with the given status
func NewErrorResponse(status int, title, message string) *ErrorResponse {
	return &ErrorResponse{status: status, Title: title, Message: message}
}

// newRequestError builds the response for errors raised by huma while binding input.
// Schema validation failures are client errors like any other missing parameter, so 422 becomes 400.
func newRequestError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	title := msg
	if title == "" {
		title = http.StatusText(status)
	}
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		if detailer, ok := err.(huma.ErrorDetailer); ok {
			detail := detailer.ErrorDetail()
			if detail.Location != "" {
				details = append(details, detail.Location+": "+detail.Message)
				continue
			}
			details = append(details, detail.Message)
			continue
		}
		details = append(details, err.Error())
	}

	return NewErrorResponse(status, title, strings.Join(details, "; "))
}

// toHTTPError converts domain errors to error responses.
// failure names the operation and becomes the title of server-side failures.
func toHTTPError(err error, failure string) error {
	if err == nil {
		return nil
	}

	if validationErr, ok := errors.AsValidation(err); ok {
		return NewErrorResponse(http.StatusBadRequest, validationErr.Message, "")
	}

	message := err.Error()
	if message == "" {
		message = errors.UnknownCause
	}
	return NewErrorResponse(http.StatusInternalServerError, failure, message)
}
