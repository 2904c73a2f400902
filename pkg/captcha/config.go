// config.go — Captcha generation parameters and their validation.
package captcha

import (
	"fmt"
	"image/color"
)

// Config holds all parameters for one captcha generator. It is validated
// once at construction and never mutated afterwards.
type Config struct {
	Width  int // Canvas width in pixels
	Height int // Canvas height in pixels

	FontPath string  // Custom TTF path; empty = embedded Go font
	FontSize float64 // Point size at 72 DPI

	PaintColor      color.RGBA // Text color
	BackgroundColor color.RGBA // Canvas fill
	NoiseColor      color.RGBA // Color of noise points and stripes

	EnableDistortion bool    // Apply the wave warp
	DistortionMin    float64 // Minimum warp amplitude, >= 0
	DistortionMax    float64 // Maximum warp amplitude, >= DistortionMin

	NoisePercent float64 // Fraction of pixels overwritten with noise, [0,1]
	NoiseStripes int     // Number of interference lines drawn over the text
}

// DefaultConfig returns parameters that produce a readable 240x80 captcha
// with a moderate warp, scattered noise points, and a few stripes.
func DefaultConfig() Config {
	return Config{
		Width:            240,
		Height:           80,
		FontSize:         48,
		PaintColor:       color.RGBA{30, 30, 60, 255},
		BackgroundColor:  color.RGBA{240, 240, 245, 255},
		NoiseColor:       color.RGBA{90, 90, 110, 255},
		EnableDistortion: true,
		DistortionMin:    4,
		DistortionMax:    9,
		NoisePercent:     0.05,
		NoiseStripes:     3,
	}
}

// Validate checks the configuration before any pixel work begins.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d: dimensions must be positive", c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("invalid font size %v: must be positive", c.FontSize)
	}
	if c.DistortionMin < 0 {
		return fmt.Errorf("invalid distortion range: min %v is negative", c.DistortionMin)
	}
	if c.DistortionMin > c.DistortionMax {
		return fmt.Errorf("invalid distortion range: min %v > max %v", c.DistortionMin, c.DistortionMax)
	}
	if c.NoisePercent < 0 || c.NoisePercent > 1 {
		return fmt.Errorf("invalid noise percent %v: must be in [0,1]", c.NoisePercent)
	}
	if c.NoiseStripes < 0 {
		return fmt.Errorf("invalid stripe count %d: must be non-negative", c.NoiseStripes)
	}
	return nil
}

// noiseEnabled reports whether any noise stage would touch the canvas.
func (c Config) noiseEnabled() bool {
	return c.NoisePercent > 0 || c.NoiseStripes > 0
}
