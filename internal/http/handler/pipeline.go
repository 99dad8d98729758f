package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"craftapi/internal/ai"
	"craftapi/internal/service"
)

// Transcribe accepts a multipart voice recording (field name: audio)
// plus a language form field and returns the recognized text. Language
// codes like "hi-IN" are accepted; only the primary subtag is passed on.
func Transcribe(svc service.TranscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("audio")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "AUDIO_REQUIRED", "audio is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "AUDIO_OPEN_ERROR", "cannot open uploaded audio")
		}
		defer f.Close()

		lang := primarySubtag(c.FormValue("language"))

		res, err := svc.Transcribe(c.UserContext(), f, fh.Filename, lang)
		if err != nil {
			return upstreamError(c, err)
		}
		return c.JSON(res)
	}
}

// Translate translates arbitrary text into a target language.
func Translate(svc service.TranscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Text           string `json:"text"`
			TargetLanguage string `json:"target_language"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		out, err := svc.Translate(c.UserContext(), body.Text, body.TargetLanguage)
		if err != nil {
			if errors.Is(err, service.ErrTextRequired) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return upstreamError(c, err)
		}
		return c.JSON(fiber.Map{"translated_text": out})
	}
}

// GenerateContent produces and persists the marketing pack for a product.
func GenerateContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		pack, err := svc.Generate(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
			}
			return upstreamError(c, err)
		}
		return c.JSON(pack)
	}
}

// EnhanceImage produces a styled product image; the service falls back
// to local filters when the hosted model fails, so errors here are rare.
func EnhanceImage(svc service.EnhanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var body struct {
			Style string `json:"style"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Enhance(c.UserContext(), id, strings.ToLower(body.Style))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
			case errors.Is(err, service.ErrInvalidStyle):
				return writeError(c, fiber.StatusBadRequest, "INVALID_STYLE", "style must be vibrant, studio or festive")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ExportPack bundles the marketing pack into shareable storage links.
func ExportPack(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Export(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
			case errors.Is(err, service.ErrNoMarketingPack):
				return writeError(c, fiber.StatusConflict, "NO_MARKETING_PACK", "generate a marketing pack before exporting")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// upstreamError maps AI-adapter failures: an open breaker means the
// service is temporarily unavailable, anything else is a bad gateway.
func upstreamError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ai.ErrUnavailable) {
		return writeError(c, fiber.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "ai service temporarily unavailable")
	}
	return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "ai service request failed")
}

// primarySubtag reduces codes like "hi-IN" or "gu_IN" to "hi"/"gu".
func primarySubtag(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
