// color.go — Hex color parsing and solid canvas creation.
package captcha

import (
	"crypto/rand"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
)

// ParseHexRGBA converts "#rrggbb" (or "rrggbb") to an opaque color.RGBA.
// The string "random" yields a random opaque color.
func ParseHexRGBA(s string) (color.RGBA, error) {
	if s == "random" {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			return color.RGBA{}, fmt.Errorf("random color: %w", err)
		}
		return color.RGBA{buf[0], buf[1], buf[2], 255}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return color.RGBA{uint8(rv), uint8(gv), uint8(bv), 255}, nil
}

// NewSolidImage creates a uniform solid-color canvas using draw.Draw.
func NewSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}
