// render.go — Plain text rasterization: background fill plus the centered
// captcha code, drawn before any distortion or noise is applied.
package captcha

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// renderPlain draws code centered on a fresh background-filled canvas.
// Horizontal centering uses the measured advance width; the baseline sits at
// (height-fontSize)/2 + fontSize so the glyphs are vertically balanced.
func (g *Generator) renderPlain(code string) (*image.RGBA, error) {
	img := NewSolidImage(g.cfg.Width, g.cfg.Height, g.cfg.BackgroundColor)

	face, err := g.fonts.Face(g.cfg.FontSize)
	if err != nil {
		return nil, err
	}

	textWidth := font.MeasureString(face, code).Ceil()
	x := (g.cfg.Width - textWidth) / 2
	y := (g.cfg.Height-int(g.cfg.FontSize))/2 + int(g.cfg.FontSize)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(g.cfg.PaintColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(code)

	return img, nil
}
