package repository

import (
	"context"

	"craftapi/internal/model"
)

// ArtisanRepository defines data access for artisan profiles using SQL queries only.
// No business logic here, strictly persistence operations.
type ArtisanRepository interface {
	// Create inserts a new artisan record and returns the stored row
	// (may include values set by the DB).
	Create(ctx context.Context, a *model.Artisan) (*model.Artisan, error)

	// FindByID returns an artisan by its ID.
	FindByID(ctx context.Context, id string) (*model.Artisan, error)

	// List returns a paginated list of artisans and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Artisan], error)

	// Update overwrites the mutable profile fields of an artisan.
	Update(ctx context.Context, a *model.Artisan) (*model.Artisan, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
