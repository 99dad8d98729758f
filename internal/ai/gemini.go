package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"craftapi/internal/config"
	"craftapi/internal/model"
)

// GeminiClient implements Tagger, ContentGenerator and ImageStyler on
// top of the Gemini API.
type GeminiClient struct {
	client       *genai.Client
	contentModel string
	visionModel  string
	imageModel   string
	call         *caller
}

var (
	_ Tagger           = (*GeminiClient)(nil)
	_ ContentGenerator = (*GeminiClient)(nil)
	_ ImageStyler      = (*GeminiClient)(nil)
)

// NewGeminiClient creates the Gemini adapter. Outbound requests are
// traced via otelhttp.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, aiCfg config.AIConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &GeminiClient{
		client:       client,
		contentModel: cfg.ContentModel,
		visionModel:  cfg.VisionModel,
		imageModel:   cfg.ImageModel,
		call:         newCaller("gemini", aiCfg),
	}, nil
}

const tagPrompt = `Look at this product photo from a local artisan.
List 5 to 10 short descriptive tags a marketplace shopper might search for
(craft style, material, colors, use). Respond as a JSON array of strings,
nothing else.`

// SuggestTags asks the vision model for descriptive labels of a
// product photo.
func (c *GeminiClient) SuggestTags(ctx context.Context, image []byte, contentType string) ([]string, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image is empty")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(tagPrompt),
			genai.NewPartFromBytes(image, contentType),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}

	var tags []string
	err := c.call.do(ctx, "suggest tags", func() error {
		resp, err := c.client.Models.GenerateContent(ctx, c.visionModel, contents, cfg)
		if err != nil {
			return err
		}
		text, err := candidateText(resp)
		if err != nil {
			return err
		}
		tags = tags[:0]
		if err := json.Unmarshal([]byte(stripFences(text)), &tags); err != nil {
			return fmt.Errorf("parse tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GenerateKit builds the marketing-pack prompt from the artisan's own
// words and the product photo, and parses the model's JSON reply.
func (c *GeminiClient) GenerateKit(ctx context.Context, req ContentRequest) (*model.MarketingPack, error) {
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("image is empty")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(contentPrompt(req)),
			genai.NewPartFromBytes(req.Image, req.ImageContentType),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}

	var pack model.MarketingPack
	err := c.call.do(ctx, "generate content", func() error {
		resp, err := c.client.Models.GenerateContent(ctx, c.contentModel, contents, cfg)
		if err != nil {
			return err
		}
		text, err := candidateText(resp)
		if err != nil {
			return err
		}
		pack = model.MarketingPack{}
		if err := json.Unmarshal([]byte(stripFences(text)), &pack); err != nil {
			return fmt.Errorf("parse marketing pack: %w", err)
		}
		if pack.ProductDescription == "" {
			return fmt.Errorf("marketing pack missing product description")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pack, nil
}

var stylePrompts = map[string]string{
	StyleVibrant: "A vibrant, professional product photograph of the subject. " +
		"Enhance the colors to be more vivid and ensure the focus is sharp. " +
		"The image should look bright and high-contrast, suitable for an e-commerce website.",
	StyleStudio: "A professional studio product shot of the subject against a clean, " +
		"minimalist, light-gray background. The lighting should be soft and even, " +
		"highlighting the texture and details of the craftsmanship. " +
		"The final image should look elegant and high-end.",
	StyleFestive: "A festive-themed product photograph of the subject. The background " +
		"should have warm, celebratory elements like soft bokeh lights or subtle " +
		"traditional patterns. The lighting should be warm and inviting, evoking a " +
		"sense of celebration.",
}

// Stylize asks the image-output model for a styled rendition of the
// product photo and returns the first PNG part of the reply.
func (c *GeminiClient) Stylize(ctx context.Context, image []byte, contentType, style string) ([]byte, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image is empty")
	}
	prompt, ok := stylePrompts[style]
	if !ok {
		prompt = "A high-quality, professional product photograph of the subject."
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, contentType),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	var out []byte
	err := c.call.do(ctx, "stylize image", func() error {
		resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, contents, cfg)
		if err != nil {
			return err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return fmt.Errorf("no candidates")
		}
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.InlineData != nil && strings.HasPrefix(p.InlineData.MIMEType, "image/") {
				out = p.InlineData.Data
				return nil
			}
		}
		return fmt.Errorf("no image data in response")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func contentPrompt(req ContentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert e-commerce marketing assistant for an artisan named %s.\n", req.ArtisanName)
	b.WriteString("Your task is to generate a complete marketing kit based on the provided image and the artisan's own words.\n\n")
	b.WriteString("Artisan's input:\n")
	fmt.Fprintf(&b, "- Craft type: %s\n", req.CraftType)
	fmt.Fprintf(&b, "- Product description: %s\n", req.Description)
	fmt.Fprintf(&b, "- Materials used: %s\n", req.Materials)
	fmt.Fprintf(&b, "- Suggested tags: %s\n\n", strings.Join(req.Tags, ", "))
	b.WriteString(`Analyze all the provided information carefully. Generate the following content as JSON with three keys: "product_description", "social_media_captions", and "hashtags".

1. product_description: refine the artisan's product description into an evocative and professional paragraph (around 80-100 words), weaving in some of the suggested tags where relevant.
2. social_media_captions: a list of 2 engaging captions.
3. hashtags: a list of 10-15 relevant hashtags, incorporating the suggested tags.`)
	return b.String()
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates")
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response")
	}
	return sb.String(), nil
}

// stripFences removes markdown code fences the model sometimes wraps
// around JSON replies.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
