package service

import "errors"

// Sentinel errors shared across services. Handlers translate these to
// HTTP error codes; anything else is an internal or upstream failure.
var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("record not found")
	ErrReaderNil         = errors.New("reader is nil")
	ErrNameRequired      = errors.New("name is required")
	ErrCraftTypeRequired = errors.New("craft type is required")
	ErrTextRequired      = errors.New("text is required")
	ErrInvalidStyle      = errors.New("invalid style")
	ErrNoMarketingPack   = errors.New("product has no marketing pack")
)
