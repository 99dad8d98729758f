package ai

import (
	"context"
	"errors"
	"io"

	"craftapi/internal/model"
)

// Package ai contains thin adapters over hosted AI services. Each
// adapter maps one external API onto a small domain-facing interface;
// every outbound call runs behind the shared retry/breaker wrapper.

// ErrUnavailable is returned when the circuit breaker for a service is
// open and the call was short-circuited without reaching the upstream.
var ErrUnavailable = errors.New("ai service unavailable")

// Image style presets accepted by ImageStyler.
const (
	StyleVibrant = "vibrant"
	StyleStudio  = "studio"
	StyleFestive = "festive"
)

// Transcriber converts recorded speech into text.
type Transcriber interface {
	// Transcribe reads audio content and returns the recognized text.
	// language is a BCP-47 primary subtag hint (e.g. "hi", "gu", "en");
	// empty means auto-detect.
	Transcribe(ctx context.Context, r io.Reader, filename, language string) (string, error)
}

// Translator translates text between languages.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Tagger suggests descriptive labels for a product photo.
type Tagger interface {
	SuggestTags(ctx context.Context, image []byte, contentType string) ([]string, error)
}

// ContentRequest carries everything the generative model needs to
// produce a marketing pack for one product.
type ContentRequest struct {
	ArtisanName      string
	CraftType        string
	Description      string
	Materials        string
	Tags             []string
	Image            []byte
	ImageContentType string
}

// ContentGenerator produces a marketing pack from a product photo and
// the artisan's own details.
type ContentGenerator interface {
	GenerateKit(ctx context.Context, req ContentRequest) (*model.MarketingPack, error)
}

// ImageStyler produces a styled, e-commerce-ready rendition of a
// product photo. The result is always PNG bytes.
type ImageStyler interface {
	Stylize(ctx context.Context, image []byte, contentType, style string) ([]byte, error)
}

// ValidStyle reports whether the given style is one of the presets.
func ValidStyle(style string) bool {
	switch style {
	case StyleVibrant, StyleStudio, StyleFestive:
		return true
	}
	return false
}
