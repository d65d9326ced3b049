package export

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/deepteams/webp"
)

var ErrUnknownFormat = errors.New("unknown image format")

type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	WebP Format = "webp"

	DefaultQuality = 92
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "jpeg", "jpg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) Extension() string {
	if f == JPEG {
		return "jpg"
	}
	return string(f)
}

func (f Format) MIMEType() string {
	return "image/" + string(f)
}

// Encoder writes a captured still in a single format
type Encoder struct {
	Format  Format
	Quality int
}

func (e Encoder) quality() int {
	if e.Quality < 1 || e.Quality > 100 {
		return DefaultQuality
	}
	return e.Quality
}

func (e Encoder) Encode(w io.Writer, img image.Image) error {
	switch e.Format {
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: e.quality()})
	case PNG:
		return png.Encode(w, img)
	case WebP:
		opts := webp.DefaultOptions()
		opts.Quality = float32(e.quality())
		return webp.Encode(w, img, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, e.Format)
}
