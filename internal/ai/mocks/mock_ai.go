package mocks

import (
	"context"
	"io"

	"craftapi/internal/ai"
	"craftapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, r io.Reader, filename, language string) (string, error) {
	args := m.Called(ctx, r, filename, language)
	return args.String(0), args.Error(1)
}

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}

type MockTagger struct {
	mock.Mock
}

func (m *MockTagger) SuggestTags(ctx context.Context, image []byte, contentType string) ([]string, error) {
	args := m.Called(ctx, image, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateKit(ctx context.Context, req ai.ContentRequest) (*model.MarketingPack, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MarketingPack), args.Error(1)
}

type MockImageStyler struct {
	mock.Mock
}

func (m *MockImageStyler) Stylize(ctx context.Context, image []byte, contentType, style string) ([]byte, error) {
	args := m.Called(ctx, image, contentType, style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
