// noise.go — Noise overlays: uniformly scattered points and interference
// stripes drawn across the finished image.
package captcha

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
)

// Noiser overlays noise onto a composed captcha image in place.
type Noiser interface {
	Apply(img *image.RGBA)
}

// NoisePoints returns floor(width*height*percent) coordinates, each axis
// drawn uniformly. Points are not deduplicated; callers overwrite in order,
// so later points win on collisions.
func NoisePoints(rng *rand.Rand, width, height int, percent float64) []image.Point {
	count := int(float64(width*height) * percent)
	points := make([]image.Point, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, image.Point{X: rng.Intn(width), Y: rng.Intn(height)})
	}
	return points
}

// pointNoiser overwrites scattered pixels with a fixed color.
type pointNoiser struct {
	rng     *rand.Rand
	color   color.RGBA
	percent float64
}

func (n pointNoiser) Apply(img *image.RGBA) {
	b := img.Bounds()
	for _, p := range NoisePoints(n.rng, b.Dx(), b.Dy(), n.percent) {
		img.SetRGBA(p.X, p.Y, n.color)
	}
}

// stripeNoiser strokes random interference lines through the image.
type stripeNoiser struct {
	rng   *rand.Rand
	color color.RGBA
	count int
}

func (n stripeNoiser) Apply(img *image.RGBA) {
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(n.color)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	for i := 0; i < n.count; i++ {
		dc.SetLineWidth(1 + float64(n.rng.Intn(2)))
		dc.DrawLine(n.rng.Float64()*w, n.rng.Float64()*h, n.rng.Float64()*w, n.rng.Float64()*h)
		dc.Stroke()
	}
}
