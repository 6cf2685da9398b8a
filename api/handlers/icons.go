// ABOUTME: Icon proxy handler exposing the read-only Iconify routes
// ABOUTME: Validates query parameters and relays upstream payloads without reshaping them

package handlers

import (
	"context"
	"net/http"

	"iconify-proxy-api/core/icons"
	"iconify-proxy-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// EndpointID is the stable identifier the host registers the proxy under
const EndpointID = "iconify-proxy"

const (
	jsonContentType = "application/json; charset=utf-8"
	svgContentType  = "image/svg+xml"

	// Icons are immutable by identity, so clients may keep them for a day
	iconCacheControl = "public, max-age=86400"
)

// IconHandler handles the icon proxy routes
type IconHandler struct {
	icons interfaces.IconService
}

// NewIconHandler creates a new icon handler
func NewIconHandler(iconService interfaces.IconService) *IconHandler {
	return &IconHandler{
		icons: iconService,
	}
}

// RegisterRoutes registers icon proxy routes
func (h *IconHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listCollections",
		Method:      http.MethodGet,
		Path:        "/collections",
		Summary:     "List icon collections",
		Description: "Relays the upstream list of icon collections",
		Tags:        []string{"Icons"},
	}, h.ListCollections)

	huma.Register(api, huma.Operation{
		OperationID: "getCollection",
		Method:      http.MethodGet,
		Path:        "/collection",
		Summary:     "Get collection detail",
		Description: "Relays the icons of one collection",
		Tags:        []string{"Icons"},
	}, h.GetCollection)

	huma.Register(api, huma.Operation{
		OperationID: "searchIcons",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search icons",
		Description: "Searches icons across all collections. Queries shorter than two characters return no icons.",
		Tags:        []string{"Icons"},
	}, h.SearchIcons)

	huma.Register(api, huma.Operation{
		OperationID: "getIcon",
		Method:      http.MethodGet,
		Path:        "/icon/{collection}/{icon}",
		Summary:     "Fetch icon SVG",
		Description: "Relays the SVG markup of a single icon",
		Tags:        []string{"Icons"},
	}, h.GetIcon)
}

// JSONOutput carries an upstream JSON payload byte for byte
type JSONOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func jsonOutput(body []byte) *JSONOutput {
	return &JSONOutput{
		ContentType: jsonContentType,
		Body:        body,
	}
}

// CollectionInput defines the input for collection detail
type CollectionInput struct {
	Prefix string `query:"prefix" doc:"Collection prefix, e.g. mdi"`
}

// SearchInput defines the input for icon search
type SearchInput struct {
	Query string `query:"query" doc:"Search text, at least two characters to reach upstream"`
	Limit string `query:"limit" default:"100" doc:"Maximum number of results, forwarded as-is"`

	repeatedQuery bool
}

// Resolve records whether query was sent more than once, which makes it a list rather than a string
func (i *SearchInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	i.repeatedQuery = len(u.Query()["query"]) > 1
	return nil
}

// IconInput defines the input for a single icon
type IconInput struct {
	Collection string `path:"collection" doc:"Collection prefix"`
	Icon       string `path:"icon" doc:"Icon name within the collection"`
	Height     string `query:"height" default:"24" doc:"Rendered icon height, forwarded as-is"`
}

// SVGOutput carries raw SVG markup
type SVGOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

// ListCollections handles GET /collections
func (h *IconHandler) ListCollections(ctx context.Context, _ *struct{}) (*JSONOutput, error) {
	collections, err := h.icons.ListCollections(ctx)
	if err != nil {
		return nil, toHTTPError(err, icons.FailedCollections)
	}
	return jsonOutput(collections), nil
}

// GetCollection handles GET /collection
func (h *IconHandler) GetCollection(ctx context.Context, input *CollectionInput) (*JSONOutput, error) {
	detail, err := h.icons.GetCollection(ctx, input.Prefix)
	if err != nil {
		return nil, toHTTPError(err, icons.FailedCollection)
	}
	return jsonOutput(detail), nil
}

// SearchIcons handles GET /search
func (h *IconHandler) SearchIcons(ctx context.Context, input *SearchInput) (*JSONOutput, error) {
	if input.repeatedQuery {
		return nil, toHTTPError(icons.QueryRequired(), icons.FailedSearch)
	}

	result, err := h.icons.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, toHTTPError(err, icons.FailedSearch)
	}
	return jsonOutput(result), nil
}

// GetIcon handles GET /icon/{collection}/{icon}
func (h *IconHandler) GetIcon(ctx context.Context, input *IconInput) (*SVGOutput, error) {
	asset, err := h.icons.GetIcon(ctx, input.Collection, input.Icon, input.Height)
	if err != nil {
		return nil, toHTTPError(err, icons.FailedIcon)
	}

	return &SVGOutput{
		ContentType:  svgContentType,
		CacheControl: iconCacheControl,
		Body:         asset.SVG,
	}, nil
}
