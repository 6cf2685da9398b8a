// ABOUTME: Icon service relays collection, search and SVG requests to the upstream Iconify API
// ABOUTME: Provides the proxy's business logic independent of the HTTP layer

package icons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"iconify-proxy-api/core/domain"
	coreerrors "iconify-proxy-api/core/errors"
	"iconify-proxy-api/core/interfaces"
)

const (
	// DefaultBaseURL is the public Iconify API
	DefaultBaseURL = "https://api.iconify.design"

	// DefaultSearchLimit is forwarded when the caller gives no limit
	DefaultSearchLimit = "100"

	// DefaultIconHeight is forwarded when the caller gives no height
	DefaultIconHeight = "24"

	// MinQueryLength is the shortest query that reaches upstream
	MinQueryLength = 2
)

// Failure titles reported to callers, one per operation
const (
	FailedCollections = "Failed to fetch collections"
	FailedCollection  = "Failed to fetch icons"
	FailedSearch      = "Failed to search icons"
	FailedIcon        = "Failed to fetch icon"
)

var (
	errInvalidJSON    = errors.New("upstream returned invalid JSON")
	errNoClient       = errors.New("HTTP client not configured")
	errPrefixRequired = &coreerrors.ValidationError{Field: "prefix", Message: "Prefix parameter is required"}
	errQueryRequired  = &coreerrors.ValidationError{Field: "query", Message: "Query parameter is required"}
)

// QueryRequired returns the validation error for a missing or non-string search query
func QueryRequired() error {
	return errQueryRequired
}

// Service proxies icon lookups to the upstream API
type Service struct {
	deps    interfaces.Dependencies
	baseURL string
}

// NewService creates a new icon service. An empty baseURL selects DefaultBaseURL.
func NewService(deps interfaces.Dependencies, baseURL string) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		deps:    deps,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListCollections returns every icon collection known upstream
func (s *Service) ListCollections(ctx context.Context) (domain.CollectionsResponse, error) {
	body, err := s.fetchJSON(ctx, s.baseURL+"/collections")
	if err != nil {
		s.logFailure(FailedCollections, err)
		return nil, err
	}
	return domain.CollectionsResponse(body), nil
}

// GetCollection returns the icons of the collection identified by prefix
func (s *Service) GetCollection(ctx context.Context, prefix string) (domain.CollectionDetail, error) {
	if prefix == "" {
		return nil, errPrefixRequired
	}

	body, err := s.fetchJSON(ctx, fmt.Sprintf("%s/collection?prefix=%s", s.baseURL, url.QueryEscape(prefix)))
	if err != nil {
		s.logFailure(FailedCollection, err)
		return nil, err
	}
	return domain.CollectionDetail(body), nil
}

// Search finds icons matching query across all collections.
// Queries shorter than MinQueryLength characters are answered locally with no icons.
func (s *Service) Search(ctx context.Context, query, limit string) (domain.SearchResult, error) {
	if query == "" {
		return nil, errQueryRequired
	}

	if utf8.RuneCountInString(query) < MinQueryLength {
		return domain.EmptySearchResult, nil
	}

	if limit == "" {
		limit = DefaultSearchLimit
	}

	apiURL := fmt.Sprintf("%s/search?query=%s&limit=%s", s.baseURL, url.QueryEscape(query), url.QueryEscape(limit))
	body, err := s.fetchJSON(ctx, apiURL)
	if err != nil {
		s.logFailure(FailedSearch, err)
		return nil, err
	}
	return domain.SearchResult(body), nil
}

// GetIcon returns the SVG markup of collection:icon rendered at height
func (s *Service) GetIcon(ctx context.Context, collection, icon, height string) (*domain.IconAsset, error) {
	if height == "" {
		height = DefaultIconHeight
	}

	apiURL := fmt.Sprintf("%s/%s:%s.svg?height=%s",
		s.baseURL, url.PathEscape(collection), url.PathEscape(icon), url.QueryEscape(height))
	svg, err := s.fetch(ctx, apiURL)
	if err != nil {
		s.logFailure(FailedIcon, err)
		return nil, err
	}

	asset := &domain.IconAsset{
		Collection: collection,
		Icon:       icon,
		Height:     height,
		SVG:        svg,
	}
	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Fetched icon", map[string]interface{}{
			"icon":   asset.Name(),
			"height": height,
			"bytes":  len(svg),
		})
	}
	return asset, nil
}

// fetchJSON fetches apiURL and checks that the body is JSON without re-encoding it
func (s *Service) fetchJSON(ctx context.Context, apiURL string) ([]byte, error) {
	body, err := s.fetch(ctx, apiURL)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &coreerrors.UpstreamError{URL: apiURL, Cause: errInvalidJSON}
	}
	return body, nil
}

// fetch issues exactly one GET and returns the body of a 2xx response
func (s *Service) fetch(ctx context.Context, apiURL string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.UpstreamError{URL: apiURL, Cause: errNoClient}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return nil, &coreerrors.UpstreamError{URL: apiURL, Cause: err}
	}
	respBody := resp.Body()
	defer respBody.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.UpstreamError{URL: apiURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(respBody)
	if err != nil {
		return nil, &coreerrors.UpstreamError{URL: apiURL, Cause: coreerrors.WrapError(err, "failed to read response")}
	}
	return body, nil
}

func (s *Service) logFailure(msg string, err error) {
	if s.deps.Logger == nil {
		return
	}

	fields := map[string]interface{}{
		"error": err.Error(),
	}
	var upstreamErr *coreerrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		fields["url"] = upstreamErr.URL
		if upstreamErr.StatusCode != 0 {
			fields["status"] = upstreamErr.StatusCode
		}
	}
	s.deps.Logger.Error(msg, fields)
}
