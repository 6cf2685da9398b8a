// ABOUTME: Picker handler serving the icon picker field descriptor
// ABOUTME: Resolves host-supplied picker options against their defaults

package handlers

import (
	"context"
	"net/http"

	"iconify-proxy-api/core/errors"
	"iconify-proxy-api/core/picker"
	"github.com/danielgtaylor/huma/v2"
)

// PickerHandler serves the icon picker field descriptor to the host's form renderer
type PickerHandler struct{}

// NewPickerHandler creates a new picker handler
func NewPickerHandler() *PickerHandler {
	return &PickerHandler{}
}

// RegisterRoutes registers picker routes
func (h *PickerHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "describePicker",
		Method:      http.MethodGet,
		Path:        "/interface",
		Summary:     "Describe the icon picker field",
		Description: "Returns the declarative descriptor of the " + picker.ID + " form field",
		Tags:        []string{"Picker"},
	}, h.Describe)

	huma.Register(api, huma.Operation{
		OperationID: "resolvePickerOptions",
		Method:      http.MethodPost,
		Path:        "/interface/options",
		Summary:     "Resolve picker options",
		Description: "Applies defaults to a picker option set and checks its types",
		Tags:        []string{"Picker"},
	}, h.ResolveOptions)
}

// DescriptorOutput defines the output for the picker descriptor
type DescriptorOutput struct {
	Body picker.Descriptor
}

// OptionsInput defines the input for option resolution
type OptionsInput struct {
	Body map[string]interface{} `doc:"Picker options as configured by the host"`
}

// ResolvedOptions is a picker option set with defaults applied
type ResolvedOptions struct {
	DefaultCollection        string   `json:"defaultCollection"`
	Collections              []string `json:"collections"`
	IconSize                 int      `json:"iconSize"`
	DefaultCollectionAllowed bool     `json:"defaultCollectionAllowed" doc:"Whether the default collection is among the allowed collections"`
}

// OptionsOutput defines the output for option resolution
type OptionsOutput struct {
	Body ResolvedOptions
}

// Describe handles GET /interface
func (h *PickerHandler) Describe(ctx context.Context, _ *struct{}) (*DescriptorOutput, error) {
	return &DescriptorOutput{Body: picker.Describe()}, nil
}

// ResolveOptions handles POST /interface/options
func (h *PickerHandler) ResolveOptions(ctx context.Context, input *OptionsInput) (*OptionsOutput, error) {
	opts, err := picker.ParseOptions(input.Body)
	if err != nil {
		if validationErr, ok := errors.AsValidation(err); ok {
			return nil, NewErrorResponse(http.StatusBadRequest, "Invalid picker options",
				validationErr.Field+": "+validationErr.Message)
		}
		return nil, toHTTPError(err, "Failed to resolve picker options")
	}
	return &OptionsOutput{Body: ResolvedOptions{
		DefaultCollection:        opts.DefaultCollection,
		Collections:              opts.Collections,
		IconSize:                 opts.IconSize,
		DefaultCollectionAllowed: opts.Allows(opts.DefaultCollection),
	}}, nil
}
