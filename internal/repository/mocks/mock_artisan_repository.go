package mocks

import (
	"context"

	"craftapi/internal/model"
	"craftapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockArtisanRepository struct {
	mock.Mock
}

func (m *MockArtisanRepository) Create(ctx context.Context, a *model.Artisan) (*model.Artisan, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artisan), args.Error(1)
}

func (m *MockArtisanRepository) FindByID(ctx context.Context, id string) (*model.Artisan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artisan), args.Error(1)
}

func (m *MockArtisanRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Artisan], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Artisan]), args.Error(1)
}

func (m *MockArtisanRepository) Update(ctx context.Context, a *model.Artisan) (*model.Artisan, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artisan), args.Error(1)
}
