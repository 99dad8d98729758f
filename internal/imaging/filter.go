package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
)

// Package imaging holds the local fallback filters used when the
// hosted image-styling service is unavailable. Each style maps to a
// simple brightness/contrast/saturation preset; output is always PNG.

type preset struct {
	brightness float64 // additive, -1..1 of full scale
	contrast   float64 // multiplicative around mid-gray
	saturation float64 // multiplicative around luminance
	warmth     float64 // additive red/minus blue shift, -1..1
}

var presets = map[string]preset{
	"vibrant": {brightness: 0.04, contrast: 1.18, saturation: 1.35},
	"studio":  {brightness: 0.10, contrast: 1.05, saturation: 0.92},
	"festive": {brightness: 0.06, contrast: 1.08, saturation: 1.15, warmth: 0.08},
}

// Apply decodes the image (jpeg or png), applies the preset for the
// given style and re-encodes as PNG. Unknown styles get a mild
// vibrant-like touch-up.
func Apply(data []byte, style string) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	p, ok := presets[style]
	if !ok {
		p = preset{brightness: 0.02, contrast: 1.08, saturation: 1.10}
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetNRGBA(x, y, transform(src.At(x, y), p))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func transform(c color.Color, p preset) color.NRGBA {
	r16, g16, b16, a16 := c.RGBA()
	r := float64(r16) / 65535
	g := float64(g16) / 65535
	b := float64(b16) / 65535

	// Saturation around per-pixel luminance.
	lum := 0.299*r + 0.587*g + 0.114*b
	r = lum + (r-lum)*p.saturation
	g = lum + (g-lum)*p.saturation
	b = lum + (b-lum)*p.saturation

	// Contrast around mid-gray, then brightness.
	r = (r-0.5)*p.contrast + 0.5 + p.brightness
	g = (g-0.5)*p.contrast + 0.5 + p.brightness
	b = (b-0.5)*p.contrast + 0.5 + p.brightness

	// Warmth shifts red up and blue down.
	r += p.warmth
	b -= p.warmth

	return color.NRGBA{
		R: clamp8(r),
		G: clamp8(g),
		B: clamp8(b),
		A: uint8(a16 >> 8),
	}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
