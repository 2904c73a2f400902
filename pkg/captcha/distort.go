// distort.go — Wave warp distortion: per-pixel source coordinate remapping
// and the randomized amplitude policy that parameterizes it.
package captcha

import (
	"math"
	"math/rand"
)

// wavePeriod divides the pixel coordinate inside the sine/cosine phase.
// Together with pi this yields a fixed wave period of 128 pixels regardless
// of canvas size, so larger images simply show more wave cycles.
const wavePeriod = 64

// Distorter maps a destination pixel to the source pixel it samples from.
// Implementations must only return coordinates inside the canvas.
type Distorter interface {
	Source(x, y int) (int, int)
}

// waveDistorter warps the image along both axes with a sine/cosine wave of
// the given amplitude. The amplitude is fixed at construction, so one
// distorter produces a coherent warp across the whole image.
type waveDistorter struct {
	width     int
	height    int
	magnitude float64
}

// NewWaveDistorter returns a Distorter that shifts each pixel by
// magnitude*sin(pi*x/64) horizontally and magnitude*cos(pi*y/64) vertically.
// A computed source that leaves the canvas resolves to the origin (0,0).
func NewWaveDistorter(width, height int, magnitude float64) Distorter {
	return waveDistorter{width: width, height: height, magnitude: magnitude}
}

func (d waveDistorter) Source(x, y int) (int, int) {
	sx := int(math.Round(float64(x) + d.magnitude*math.Sin(math.Pi*float64(x)/wavePeriod)))
	sy := int(math.Round(float64(y) + d.magnitude*math.Cos(math.Pi*float64(y)/wavePeriod)))
	if sx < 0 || sx >= d.width || sy < 0 || sy >= d.height {
		return 0, 0
	}
	return sx, sy
}

// identityDistorter samples every pixel from itself. Used when distortion is
// disabled but a destination buffer is still needed for the noise overlay.
type identityDistorter struct{}

// Identity returns the no-op Distorter.
func Identity() Distorter {
	return identityDistorter{}
}

func (identityDistorter) Source(x, y int) (int, int) {
	return x, y
}

// drawMagnitude picks a warp amplitude uniformly from [min,max] and negates
// it with probability 0.5. The result is never inside (-min,min), so an
// enabled warp stays visible, and its direction is symmetric.
func drawMagnitude(rng *rand.Rand, min, max float64) float64 {
	m := min + (max-min)*rng.Float64()
	if rng.Intn(2) == 0 {
		m = -m
	}
	return m
}
