package model

// MarketingPack is the bundle of generated marketing text produced for
// one product. Field names match the JSON contract of the generative
// model so responses unmarshal directly.
type MarketingPack struct {
	ProductDescription string   `json:"product_description"`
	SocialCaptions     []string `json:"social_media_captions"`
	Hashtags           []string `json:"hashtags"`
}

// ExportResult holds the shareable links produced when a marketing
// pack is exported to the object store.
type ExportResult struct {
	ImageURL   string `json:"image_url"`
	ContentURL string `json:"content_url"`
}
