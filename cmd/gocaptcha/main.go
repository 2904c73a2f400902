// GoCaptcha — Distorted-text captcha image generation.
//
// Usage:
//
//	gocaptcha -o <file> [-text AB3K] [options]
//	gocaptcha serve [--port 8080] [--preset preset.json]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/xob0t/GoCaptcha/clients/server"
	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := server.RunServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		if err := run(os.Args[1:]); err != nil {
			fatal(err)
		}
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gocaptcha", flag.ExitOnError)

	var (
		output     string
		text       string
		presetPath string
		width      int
		height     int
		fontPath   string
		fontSize   float64
		paint      string
		background string
		noiseColor string
		distortMin float64
		distortMax float64
		noDistort  bool
		noise      float64
		stripes    int
		length     int
		quality    int
		seed       int64
	)

	def := captcha.DefaultConfig()

	fs.StringVar(&output, "o", "", "Output file path (.png, .jpg or .bmp)")
	fs.StringVar(&output, "output", "", "Output file path (.png, .jpg or .bmp)")
	fs.StringVar(&text, "text", "", "Captcha code (default: random)")
	fs.StringVar(&presetPath, "preset", "", "Path to preset JSON")
	fs.IntVar(&width, "w", def.Width, "Width in pixels")
	fs.IntVar(&width, "width", def.Width, "Width in pixels")
	fs.IntVar(&height, "h", def.Height, "Height in pixels")
	fs.IntVar(&height, "height", def.Height, "Height in pixels")
	fs.StringVar(&fontPath, "font", "", "Custom TTF path (default: embedded Go font)")
	fs.Float64Var(&fontSize, "font-size", def.FontSize, "Font size in points")
	fs.StringVar(&paint, "paint", "", "Text color: hex or 'random'")
	fs.StringVar(&background, "bg", "", "Background color: hex or 'random'")
	fs.StringVar(&noiseColor, "noise-color", "", "Noise color: hex or 'random'")
	fs.Float64Var(&distortMin, "distort-min", def.DistortionMin, "Minimum warp amplitude")
	fs.Float64Var(&distortMax, "distort-max", def.DistortionMax, "Maximum warp amplitude")
	fs.BoolVar(&noDistort, "no-distort", false, "Disable the wave warp")
	fs.Float64Var(&noise, "noise", def.NoisePercent, "Noise point fraction [0,1]")
	fs.IntVar(&stripes, "stripes", def.NoiseStripes, "Interference stripe count")
	fs.IntVar(&length, "len", 4, "Random code length when -text is not set")
	fs.IntVar(&quality, "quality", 90, "JPEG quality")
	fs.Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}

	cfg := def
	if presetPath != "" {
		preset, err := captcha.LoadPreset(presetPath)
		if err != nil {
			return err
		}
		if cfg, err = preset.Config(); err != nil {
			return err
		}
		if preset.CodeLength > 0 {
			length = preset.CodeLength
		}
	} else {
		cfg.Width = width
		cfg.Height = height
		cfg.FontPath = fontPath
		cfg.FontSize = fontSize
		cfg.EnableDistortion = !noDistort
		cfg.DistortionMin = distortMin
		cfg.DistortionMax = distortMax
		cfg.NoisePercent = noise
		cfg.NoiseStripes = stripes

		var err error
		if paint != "" {
			if cfg.PaintColor, err = captcha.ParseHexRGBA(paint); err != nil {
				return err
			}
		}
		if background != "" {
			if cfg.BackgroundColor, err = captcha.ParseHexRGBA(background); err != nil {
				return err
			}
		}
		if noiseColor != "" {
			if cfg.NoiseColor, err = captcha.ParseHexRGBA(noiseColor); err != nil {
				return err
			}
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	gen, err := captcha.NewWithRand(cfg, rng)
	if err != nil {
		return err
	}

	if text == "" {
		text = captcha.RandomCode(rng, length)
	}

	img, err := gen.BuildImage(text)
	if err != nil {
		return err
	}
	if err := captcha.WriteFile(output, img, quality); err != nil {
		return err
	}

	fmt.Printf("Generated: %s (code: %s)\n", output, text)
	return nil
}

func printUsage() {
	fmt.Println(`GoCaptcha — Distorted-text captcha image generation

Usage:
  gocaptcha -o <file> [options]      Generate a captcha image
  gocaptcha serve [--port 8080]      Run the HTTP API

Options:
  -o, -output      Output file path (.png, .jpg or .bmp)
  -text            Captcha code (default: random, printed after generation)
  -len             Random code length (default 4)
  -preset          Preset JSON file (overrides the flags below)
  -w, -width       Width in pixels
  -h, -height      Height in pixels
  -font            Custom TTF path (default: embedded Go font)
  -font-size       Font size in points
  -paint           Text color: '#rrggbb' or 'random'
  -bg              Background color: '#rrggbb' or 'random'
  -noise-color     Noise color: '#rrggbb' or 'random'
  -no-distort      Disable the wave warp
  -distort-min     Minimum warp amplitude
  -distort-max     Maximum warp amplitude
  -noise           Noise point fraction [0,1]
  -stripes         Interference stripe count
  -quality         JPEG quality (default 90)
  -seed            Random seed for reproducible output`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
