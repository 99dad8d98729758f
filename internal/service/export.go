package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"craftapi/internal/model"
	"craftapi/internal/repository"
	"craftapi/internal/storage"
)

// ExportService bundles a product's marketing pack (styled image plus
// generated text) under an exports/ prefix in the object store and
// returns time-limited share links.
type ExportService interface {
	Export(ctx context.Context, productID string) (*model.ExportResult, error)
}

type exportService struct {
	store      storage.Storage
	products   repository.ProductRepository
	linkExpiry time.Duration
}

// NewExportService constructs a new ExportService.
func NewExportService(store storage.Storage, products repository.ProductRepository, linkExpiry time.Duration) ExportService {
	if linkExpiry <= 0 {
		linkExpiry = 7 * 24 * time.Hour
	}
	return &exportService{store: store, products: products, linkExpiry: linkExpiry}
}

func (s *exportService) Export(ctx context.Context, productID string) (*model.ExportResult, error) {
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
	if p.MarketingPack == nil {
		return nil, ErrNoMarketingPack
	}

	// Prefer the styled image; fall back to the original upload.
	imagePath := p.EnhancedImagePath
	imageType := "image/png"
	if imagePath == "" {
		imagePath = p.ImagePath
		imageType = p.ImageContentType
	}

	rc, _, err := s.store.Get(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	image, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	prefix := fmt.Sprintf("exports/%s/%s", productID, time.Now().UTC().Format("20060102T150405Z"))
	imageKey := prefix + "/enhanced_image.png"
	textKey := prefix + "/marketing_content.txt"

	if _, err := s.store.Put(ctx, imageKey, bytes.NewReader(image), storage.PutObjectOptions{
		Size:        int64(len(image)),
		ContentType: imageType,
	}); err != nil {
		return nil, fmt.Errorf("export image: %w", err)
	}

	text := renderPack(p.MarketingPack)
	if _, err := s.store.Put(ctx, textKey, strings.NewReader(text), storage.PutObjectOptions{
		Size:        int64(len(text)),
		ContentType: "text/plain; charset=utf-8",
	}); err != nil {
		return nil, fmt.Errorf("export content: %w", err)
	}

	imageURL, err := s.store.PresignGet(ctx, imageKey, s.linkExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign image: %w", err)
	}
	contentURL, err := s.store.PresignGet(ctx, textKey, s.linkExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign content: %w", err)
	}

	return &model.ExportResult{ImageURL: imageURL, ContentURL: contentURL}, nil
}

// renderPack lays the marketing pack out as a plain-text file an
// artisan can paste from.
func renderPack(pack *model.MarketingPack) string {
	var b strings.Builder
	b.WriteString("PRODUCT DESCRIPTION\n\n")
	b.WriteString(pack.ProductDescription)
	b.WriteString("\n\nSOCIAL MEDIA CAPTIONS\n")
	for i, c := range pack.SocialCaptions {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, c)
	}
	b.WriteString("\nHASHTAGS\n\n")
	b.WriteString(strings.Join(pack.Hashtags, " "))
	b.WriteString("\n")
	return b.String()
}
