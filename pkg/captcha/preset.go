// preset.go — JSON preset files for the CLI and server: colors as hex
// strings, resolved into a validated Config.
package captcha

import (
	"encoding/json"
	"fmt"
	"os"
)

// Preset is the JSON-facing shape of a captcha configuration. Unset size,
// font, and color fields inherit from DefaultConfig; the distortion and
// noise sections are taken as written, so omitting them disables those
// stages.
type Preset struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Font       string  `json:"font"`
	FontSize   float64 `json:"fontSize"`
	Paint      string  `json:"paint"`      // "#rrggbb" or "random"
	Background string  `json:"background"` // "#rrggbb" or "random"
	NoiseColor string  `json:"noiseColor"` // "#rrggbb" or "random"

	Distortion struct {
		Enabled bool    `json:"enabled"`
		Min     float64 `json:"min"`
		Max     float64 `json:"max"`
	} `json:"distortion"`

	NoisePercent float64 `json:"noisePercent"`
	NoiseStripes int     `json:"noiseStripes"`
	CodeLength   int     `json:"codeLength"`
}

// LoadPreset reads and parses a preset JSON file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return &p, nil
}

// Config resolves the preset into a validated Config.
func (p *Preset) Config() (Config, error) {
	cfg := DefaultConfig()

	if p.Width > 0 {
		cfg.Width = p.Width
	}
	if p.Height > 0 {
		cfg.Height = p.Height
	}
	if p.Font != "" {
		cfg.FontPath = p.Font
	}
	if p.FontSize > 0 {
		cfg.FontSize = p.FontSize
	}

	var err error
	if p.Paint != "" {
		if cfg.PaintColor, err = ParseHexRGBA(p.Paint); err != nil {
			return Config{}, fmt.Errorf("paint: %w", err)
		}
	}
	if p.Background != "" {
		if cfg.BackgroundColor, err = ParseHexRGBA(p.Background); err != nil {
			return Config{}, fmt.Errorf("background: %w", err)
		}
	}
	if p.NoiseColor != "" {
		if cfg.NoiseColor, err = ParseHexRGBA(p.NoiseColor); err != nil {
			return Config{}, fmt.Errorf("noiseColor: %w", err)
		}
	}

	cfg.EnableDistortion = p.Distortion.Enabled
	cfg.DistortionMin = p.Distortion.Min
	cfg.DistortionMax = p.Distortion.Max
	cfg.NoisePercent = p.NoisePercent
	cfg.NoiseStripes = p.NoiseStripes

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
