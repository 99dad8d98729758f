package mocks

import (
	"context"
	"io"

	"craftapi/internal/model"
	"craftapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockArtisanService struct {
	mock.Mock
}

func (m *MockArtisanService) Create(ctx context.Context, name, craftType, contact string) (*model.Artisan, error) {
	args := m.Called(ctx, name, craftType, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artisan), args.Error(1)
}

func (m *MockArtisanService) Get(ctx context.Context, id string) (*model.Artisan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artisan), args.Error(1)
}

func (m *MockArtisanService) List(ctx context.Context, limit, offset int) (*service.ArtisanListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArtisanListResult), args.Error(1)
}

func (m *MockArtisanService) Update(ctx context.Context, id, name, craftType, contact string) (*model.Artisan, error) {
	args := m.Called(ctx, id, name, craftType, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artisan), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, meta service.ProductUpload) (*model.Product, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) ListByArtisan(ctx context.Context, artisanID string, limit, offset int) (*service.ProductListResult, error) {
	args := m.Called(ctx, artisanID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductListResult), args.Error(1)
}

func (m *MockProductService) ConfirmTags(ctx context.Context, id string, tags []string) (*model.Product, error) {
	args := m.Called(ctx, id, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, r io.Reader, filename, language string) (*service.TranscriptionResult, error) {
	args := m.Called(ctx, r, filename, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TranscriptionResult), args.Error(1)
}

func (m *MockTranscriptionService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Generate(ctx context.Context, productID string) (*model.MarketingPack, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MarketingPack), args.Error(1)
}

type MockEnhanceService struct {
	mock.Mock
}

func (m *MockEnhanceService) Enhance(ctx context.Context, productID, style string) (*service.EnhanceResult, error) {
	args := m.Called(ctx, productID, style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EnhanceResult), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, productID string) (*model.ExportResult, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExportResult), args.Error(1)
}
