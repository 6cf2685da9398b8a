// ABOUTME: Transient payload shapes relayed between the upstream icon API and callers
// ABOUTME: Payloads stay opaque; the proxy never decodes or reshapes them

package domain

import "encoding/json"

// CollectionsResponse maps collection prefixes to collection metadata, exactly as upstream sent it
type CollectionsResponse json.RawMessage

// CollectionDetail describes the icons of one collection, exactly as upstream sent it
type CollectionDetail json.RawMessage

// SearchResult holds the icon identifiers matching a query, exactly as upstream sent it
type SearchResult json.RawMessage

// EmptySearchResult is answered for queries too short to be worth an upstream call
var EmptySearchResult = SearchResult(`{"icons":[]}`)

// IconAsset is the raw SVG markup of a single icon
type IconAsset struct {
	Collection string
	Icon       string
	Height     string
	SVG        []byte
}

// Name returns the collection-qualified icon identifier, e.g. "mdi:home"
func (a *IconAsset) Name() string {
	return a.Collection + ":" + a.Icon
}
