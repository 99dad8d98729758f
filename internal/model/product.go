package model

import "time"

// Product represents one product record owned by an artisan: the
// uploaded photo, the artisan's own details, the confirmed tags and
// whatever the AI pipeline has produced for it so far.
type Product struct {
	ID                string         `json:"id"`
	ArtisanID         string         `json:"artisan_id"`
	Description       string         `json:"description"`
	Materials         string         `json:"materials"`
	Dimensions        string         `json:"dimensions"`
	Tags              []string       `json:"tags"`
	ImagePath         string         `json:"image_path"`
	ImageContentType  string         `json:"image_content_type"`
	EnhancedImagePath string         `json:"enhanced_image_path,omitempty"`
	MarketingPack     *MarketingPack `json:"marketing_pack,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
