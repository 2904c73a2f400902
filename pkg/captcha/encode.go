// encode.go — Image serialization with format dispatch by file extension.
package captcha

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Encode writes img to w in the format named by ext (".png", ".jpg"/".jpeg",
// or ".bmp"). quality applies to JPEG only; values outside (0,100] fall back
// to the JPEG default.
func Encode(w io.Writer, ext string, img image.Image, quality int) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		if quality <= 0 || quality > 100 {
			quality = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png, .jpg or .bmp", ext)
	}
}

// WriteFile encodes img to a file, inferring the format from the path's
// extension.
func WriteFile(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, filepath.Ext(path), img, quality); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
