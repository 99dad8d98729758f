package repository

import (
	"context"

	"craftapi/internal/model"
)

// ProductRepository defines data access for product records.
// Tags and marketing packs are persisted as JSONB documents; the
// implementations handle the (un)marshaling so callers only ever see
// domain types.
type ProductRepository interface {
	// Create inserts a new product row.
	Create(ctx context.Context, p *model.Product) (*model.Product, error)

	// FindByID returns a product by its ID.
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// ListByArtisan returns a page of products owned by one artisan
	// together with the total count for that artisan.
	ListByArtisan(ctx context.Context, artisanID string, pq PageQuery) (*PageResult[model.Product], error)

	// UpdateTags replaces the confirmed tag list of a product.
	UpdateTags(ctx context.Context, id string, tags []string) error

	// UpdateMarketingPack stores the generated marketing pack on a product.
	UpdateMarketingPack(ctx context.Context, id string, pack *model.MarketingPack) error

	// UpdateEnhancedImage stores the storage path of the styled image.
	UpdateEnhancedImage(ctx context.Context, id string, path string) error

	// Delete removes a product by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
