package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"craftapi/internal/model"
	"craftapi/internal/repository"
)

// ArtisanListResult is the service-level DTO for paginated artisans.
type ArtisanListResult struct {
	Items []model.Artisan `json:"data"`
	Total int             `json:"total"`
}

// ArtisanService defines the use cases for artisan profiles.
type ArtisanService interface {
	// Create registers a new artisan profile.
	Create(ctx context.Context, name, craftType, contact string) (*model.Artisan, error)

	// Get returns a single artisan by ID.
	Get(ctx context.Context, id string) (*model.Artisan, error)

	// List returns artisans using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ArtisanListResult, error)

	// Update overwrites the profile fields of an existing artisan.
	Update(ctx context.Context, id, name, craftType, contact string) (*model.Artisan, error)
}

type artisanService struct {
	repo repository.ArtisanRepository
}

// NewArtisanService constructs a new ArtisanService.
func NewArtisanService(repo repository.ArtisanRepository) ArtisanService {
	return &artisanService{repo: repo}
}

func (s *artisanService) Create(ctx context.Context, name, craftType, contact string) (*model.Artisan, error) {
	name = strings.TrimSpace(name)
	craftType = strings.TrimSpace(craftType)
	if name == "" {
		return nil, ErrNameRequired
	}
	if craftType == "" {
		return nil, ErrCraftTypeRequired
	}

	a := &model.Artisan{
		ID:        uuid.New().String(),
		Name:      name,
		CraftType: craftType,
		Contact:   strings.TrimSpace(contact),
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, a)
}

func (s *artisanService) Get(ctx context.Context, id string) (*model.Artisan, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *artisanService) List(ctx context.Context, limit, offset int) (*ArtisanListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ArtisanListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *artisanService) Update(ctx context.Context, id, name, craftType, contact string) (*model.Artisan, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	name = strings.TrimSpace(name)
	craftType = strings.TrimSpace(craftType)
	if name == "" {
		return nil, ErrNameRequired
	}
	if craftType == "" {
		return nil, ErrCraftTypeRequired
	}

	out, err := s.repo.Update(ctx, &model.Artisan{
		ID:        id,
		Name:      name,
		CraftType: craftType,
		Contact:   strings.TrimSpace(contact),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
