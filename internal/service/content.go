package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"craftapi/internal/ai"
	"craftapi/internal/model"
	"craftapi/internal/repository"
	"craftapi/internal/storage"
)

// ContentService generates the marketing pack for a product and
// persists it on the record. Identical inputs within the cache TTL are
// served from memory without calling the upstream model.
type ContentService interface {
	Generate(ctx context.Context, productID string) (*model.MarketingPack, error)
}

type contentService struct {
	store     storage.Storage
	products  repository.ProductRepository
	artisans  repository.ArtisanRepository
	generator ai.ContentGenerator
	cache     *ai.ContentCache
}

// NewContentService constructs a new ContentService.
func NewContentService(store storage.Storage, products repository.ProductRepository, artisans repository.ArtisanRepository, generator ai.ContentGenerator, cache *ai.ContentCache) ContentService {
	return &contentService{
		store:     store,
		products:  products,
		artisans:  artisans,
		generator: generator,
		cache:     cache,
	}
}

func (s *contentService) Generate(ctx context.Context, productID string) (*model.MarketingPack, error) {
	if productID == "" {
		return nil, ErrIDRequired
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a, err := s.artisans.FindByID(ctx, p.ArtisanID)
	if err != nil {
		return nil, fmt.Errorf("load artisan: %w", err)
	}

	image, err := s.readObject(ctx, p.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("load product image: %w", err)
	}

	req := ai.ContentRequest{
		ArtisanName:      a.Name,
		CraftType:        a.CraftType,
		Description:      p.Description,
		Materials:        p.Materials,
		Tags:             p.Tags,
		Image:            image,
		ImageContentType: p.ImageContentType,
	}

	key := s.cache.Key(req)
	if pack, ok := s.cache.Get(key); ok {
		return pack, nil
	}

	pack, err := s.generator.GenerateKit(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.products.UpdateMarketingPack(ctx, productID, pack); err != nil {
		return nil, fmt.Errorf("save marketing pack: %w", err)
	}
	s.cache.Add(key, pack)
	return pack, nil
}

func (s *contentService) readObject(ctx context.Context, key string) ([]byte, error) {
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
