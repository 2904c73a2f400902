package captcha_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

// TestParseHexRGBA verifies hex parsing with and without the leading '#'.
func TestParseHexRGBA(t *testing.T) {
	c, err := captcha.ParseHexRGBA("#1a2b3c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x1a, 0x2b, 0x3c, 255}, c)

	c, err = captcha.ParseHexRGBA("ffffff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)
}

// TestParseHexRGBAInvalid verifies that malformed color strings are rejected.
func TestParseHexRGBAInvalid(t *testing.T) {
	for _, s := range []string{"", "#fff", "#gggggg", "#12345", "not-a-color"} {
		_, err := captcha.ParseHexRGBA(s)
		assert.Error(t, err, "input %q", s)
	}
}

// TestParseHexRGBARandom verifies that "random" yields an opaque color.
func TestParseHexRGBARandom(t *testing.T) {
	c, err := captcha.ParseHexRGBA("random")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.A)
}

// TestNewSolidImage verifies the fill covers every pixel.
func TestNewSolidImage(t *testing.T) {
	fill := color.RGBA{10, 20, 30, 255}
	img := captcha.NewSolidImage(8, 4, fill)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, fill, img.RGBAAt(x, y))
		}
	}
}
