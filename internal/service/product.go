package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"craftapi/internal/ai"
	"craftapi/internal/model"
	"craftapi/internal/repository"
	"craftapi/internal/storage"
)

// ProductUpload carries the form fields accompanying a product photo.
type ProductUpload struct {
	ArtisanID   string
	Description string
	Materials   string
	Dimensions  string
}

// ProductListResult is the service-level DTO for paginated products.
type ProductListResult struct {
	Items []model.Product `json:"data"`
	Total int             `json:"total"`
}

// ProductService defines the use cases for product records.
type ProductService interface {
	// Upload stores the photo in object storage, asks the vision
	// service for suggested tags, saves the record, and rolls back
	// storage if the DB save fails. A tagging failure never fails the
	// upload; the product just starts with no tags.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, meta ProductUpload) (*model.Product, error)

	// Get returns a single product by its ID.
	Get(ctx context.Context, id string) (*model.Product, error)

	// ListByArtisan returns one artisan's products with a total count.
	ListByArtisan(ctx context.Context, artisanID string, limit, offset int) (*ProductListResult, error)

	// ConfirmTags replaces the product's tag list with the ones the
	// artisan actually confirmed.
	ConfirmTags(ctx context.Context, id string, tags []string) (*model.Product, error)

	// Delete removes a product from both storage and repository.
	Delete(ctx context.Context, id string) error
}

type productService struct {
	store    storage.Storage
	repo     repository.ProductRepository
	artisans repository.ArtisanRepository
	tagger   ai.Tagger
}

// NewProductService constructs a new ProductService.
func NewProductService(store storage.Storage, repo repository.ProductRepository, artisans repository.ArtisanRepository, tagger ai.Tagger) ProductService {
	return &productService{store: store, repo: repo, artisans: artisans, tagger: tagger}
}

func (s *productService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, meta ProductUpload) (*model.Product, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if meta.ArtisanID == "" {
		return nil, ErrIDRequired
	}

	// The photo must belong to a registered artisan.
	if _, err := s.artisans.FindByID(ctx, meta.ArtisanID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// The image is needed twice (storage upload and vision tagging),
	// so buffer it once.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("products", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	// Suggested tags improve discoverability but are best-effort only.
	tags, tagErr := s.tagger.SuggestTags(ctx, data, contentType)
	if tagErr != nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	p := &model.Product{
		ID:               uuid.New().String(),
		ArtisanID:        meta.ArtisanID,
		Description:      meta.Description,
		Materials:        meta.Materials,
		Dimensions:       meta.Dimensions,
		Tags:             tags,
		ImagePath:        objInfo.Key,
		ImageContentType: contentType,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) ListByArtisan(ctx context.Context, artisanID string, limit, offset int) (*ProductListResult, error) {
	if artisanID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListByArtisan(ctx, artisanID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *productService) ConfirmTags(ctx context.Context, id string, tags []string) (*model.Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.repo.UpdateTags(ctx, id, tags); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes the stored objects first, then the record. A missing
// enhanced image is not an error; the original must go.
func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, p.ImagePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if p.EnhancedImagePath != "" {
		_ = s.store.Delete(ctx, p.EnhancedImagePath)
	}
	return s.repo.Delete(ctx, id)
}
