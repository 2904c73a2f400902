package captcha_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

const presetJSON = `{
	"width": 200,
	"height": 64,
	"fontSize": 36,
	"paint": "#102030",
	"background": "#f0f0f5",
	"noiseColor": "#5a5a6e",
	"distortion": {"enabled": true, "min": 3, "max": 8},
	"noisePercent": 0.04,
	"noiseStripes": 2,
	"codeLength": 5
}`

// TestLoadPreset verifies JSON parsing and Config resolution from a file.
func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	require.NoError(t, os.WriteFile(path, []byte(presetJSON), 0o644))

	p, err := captcha.LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, 5, p.CodeLength)

	cfg, err := p.Config()
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
	assert.Equal(t, 36.0, cfg.FontSize)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, cfg.PaintColor)
	assert.True(t, cfg.EnableDistortion)
	assert.Equal(t, 3.0, cfg.DistortionMin)
	assert.Equal(t, 8.0, cfg.DistortionMax)
	assert.Equal(t, 0.04, cfg.NoisePercent)
	assert.Equal(t, 2, cfg.NoiseStripes)
}

// TestPresetDefaults verifies that an empty preset inherits sizes and colors
// from DefaultConfig and leaves distortion and noise off.
func TestPresetDefaults(t *testing.T) {
	var p captcha.Preset
	cfg, err := p.Config()
	require.NoError(t, err)

	def := captcha.DefaultConfig()
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, def.PaintColor, cfg.PaintColor)
	assert.False(t, cfg.EnableDistortion)
	assert.Zero(t, cfg.NoisePercent)
}

// TestPresetInvalid verifies that bad color strings and inverted ranges are
// surfaced as errors.
func TestPresetInvalid(t *testing.T) {
	p := captcha.Preset{Paint: "#xyz"}
	_, err := p.Config()
	assert.Error(t, err)

	p = captcha.Preset{}
	p.Distortion.Enabled = true
	p.Distortion.Min = 9
	p.Distortion.Max = 2
	_, err = p.Config()
	assert.Error(t, err)

	_, err = captcha.LoadPreset(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
