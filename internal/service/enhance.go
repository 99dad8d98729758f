package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"craftapi/internal/ai"
	"craftapi/internal/imaging"
	"craftapi/internal/model"
	"craftapi/internal/repository"
	"craftapi/internal/storage"
)

// EnhanceResult reports where the styled image ended up and whether
// the local filter fallback had to stand in for the AI model.
type EnhanceResult struct {
	Product      *model.Product `json:"product"`
	UsedFallback bool           `json:"used_fallback"`
}

// EnhanceService produces a styled rendition of a product photo. The
// hosted image model is tried first; if it fails after retries (or its
// breaker is open), a local brightness/contrast/saturation filter is
// applied instead so the artisan always gets an image back.
type EnhanceService interface {
	Enhance(ctx context.Context, productID, style string) (*EnhanceResult, error)
}

type enhanceService struct {
	store    storage.Storage
	products repository.ProductRepository
	styler   ai.ImageStyler
}

// NewEnhanceService constructs a new EnhanceService.
func NewEnhanceService(store storage.Storage, products repository.ProductRepository, styler ai.ImageStyler) EnhanceService {
	return &enhanceService{store: store, products: products, styler: styler}
}

func (s *enhanceService) Enhance(ctx context.Context, productID, style string) (*EnhanceResult, error) {
	if productID == "" {
		return nil, ErrIDRequired
	}
	if !ai.ValidStyle(style) {
		return nil, ErrInvalidStyle
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, p.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("load product image: %w", err)
	}
	original, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, fmt.Errorf("read product image: %w", err)
	}

	usedFallback := false
	styled, err := s.styler.Stylize(ctx, original, p.ImageContentType, style)
	if err != nil {
		styled, err = imaging.Apply(original, style)
		if err != nil {
			return nil, fmt.Errorf("fallback filter: %w", err)
		}
		usedFallback = true
	}

	key := filepath.ToSlash(filepath.Join("enhanced", uuid.New().String()+".png"))
	if _, err := s.store.Put(ctx, key, bytes.NewReader(styled), storage.PutObjectOptions{
		Size:        int64(len(styled)),
		ContentType: "image/png",
		Metadata: map[string]string{
			"product-id": productID,
			"style":      style,
		},
	}); err != nil {
		return nil, fmt.Errorf("store enhanced image: %w", err)
	}

	if err := s.products.UpdateEnhancedImage(ctx, productID, key); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	p.EnhancedImagePath = key
	return &EnhanceResult{Product: p, UsedFallback: usedFallback}, nil
}
