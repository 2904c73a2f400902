// fonts.go — Font loading with embedded fallback and per-size face cache.
// Uses golang.org/x/image/font for OpenType rendering; defaults to Go Regular
// when no custom font is configured.
package captcha

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// renderDPI is the resolution font sizes are interpreted at.
const renderDPI = 72

// FontManager parses a font once and hands out faces per size. Faces are
// cached; the cache is not safe for concurrent use, matching the generator's
// single-threaded contract.
type FontManager struct {
	parsed *opentype.Font
	faces  map[float64]font.Face
}

// NewFontManager loads the font at customPath, or the embedded Go Regular
// font when the path is empty. A configured path that cannot be read or
// parsed is a configuration error, not a silent fallback.
func NewFontManager(customPath string) (*FontManager, error) {
	data := goregular.TTF
	if customPath != "" {
		var err error
		data, err = os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", customPath, err)
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &FontManager{
		parsed: parsed,
		faces:  make(map[float64]font.Face),
	}, nil
}

// Face returns a font.Face at the given point size.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := fm.faces[size]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     renderDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	fm.faces[size] = face
	return face, nil
}
