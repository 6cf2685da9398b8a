// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts the HTTP layer depends on

package interfaces

import (
	"context"

	"iconify-proxy-api/core/domain"
)

// IconService relays icon lookups to the upstream icon API
type IconService interface {
	ListCollections(ctx context.Context) (domain.CollectionsResponse, error)
	GetCollection(ctx context.Context, prefix string) (domain.CollectionDetail, error)
	Search(ctx context.Context, query, limit string) (domain.SearchResult, error)
	GetIcon(ctx context.Context, collection, icon, height string) (*domain.IconAsset, error)
}
