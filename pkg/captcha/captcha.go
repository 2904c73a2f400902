// Package captcha generates distorted text images for human-verification
// challenges.
//
// All output follows one pipeline: rasterize the code onto a plain canvas,
// resample every pixel through a wave distortion, then overlay noise points
// and interference stripes. Encoding the result to PNG/JPEG/BMP bytes is a
// separate step (see Encode and WriteFile).
package captcha

import (
	"image"
	"math/rand"
	"time"
)

// Generator builds captcha images for a fixed, validated configuration.
//
// A Generator is not safe for concurrent use: it owns a single pseudorandom
// source shared by the distortion and noise stages. Callers that build
// images from multiple goroutines must serialize access.
type Generator struct {
	cfg   Config
	fonts *FontManager
	rng   *rand.Rand
}

// New creates a Generator seeded from the current time.
func New(cfg Config) (*Generator, error) {
	return NewWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a Generator using the given random source. Injecting a
// seeded source makes image generation fully deterministic, which tests and
// reproducible CLI runs rely on.
func NewWithRand(cfg Config, rng *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fonts, err := NewFontManager(cfg.FontPath)
	if err != nil {
		return nil, err
	}

	return &Generator{cfg: cfg, fonts: fonts, rng: rng}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// BuildImage renders code into a finished captcha canvas. With distortion
// and noise both disabled the plain render is returned as-is, without a
// second buffer.
//
// The wave amplitude is drawn once per image, so every pixel shares the same
// warp and the text stays a coherent, readable wave.
func (g *Generator) BuildImage(code string) (*image.RGBA, error) {
	plain, err := g.renderPlain(code)
	if err != nil {
		return nil, err
	}

	if !g.cfg.EnableDistortion && !g.cfg.noiseEnabled() {
		return plain, nil
	}

	distorter := Identity()
	if g.cfg.EnableDistortion {
		m := drawMagnitude(g.rng, g.cfg.DistortionMin, g.cfg.DistortionMax)
		distorter = NewWaveDistorter(g.cfg.Width, g.cfg.Height, m)
	}
	dst := resample(plain, distorter)

	for _, n := range g.noisers() {
		n.Apply(dst)
	}

	return dst, nil
}

// noisers assembles the enabled noise stages in overlay order: scattered
// points first, stripes on top.
func (g *Generator) noisers() []Noiser {
	var ns []Noiser
	if g.cfg.NoisePercent > 0 {
		ns = append(ns, pointNoiser{rng: g.rng, color: g.cfg.NoiseColor, percent: g.cfg.NoisePercent})
	}
	if g.cfg.NoiseStripes > 0 {
		ns = append(ns, stripeNoiser{rng: g.rng, color: g.cfg.NoiseColor, count: g.cfg.NoiseStripes})
	}
	return ns
}

// resample copies src into a new canvas of the same size, reading each
// destination pixel from the source coordinate the Distorter selects.
func resample(src *image.RGBA, d Distorter) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			sx, sy := d.Source(x, y)
			dst.SetRGBA(x, y, src.RGBAAt(sx, sy))
		}
	}
	return dst
}
