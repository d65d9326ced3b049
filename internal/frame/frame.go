package frame

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "github.com/deepteams/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var ErrInvalidDimensions = errors.New("frame buffer does not match its dimensions")

// Frame is a packed, non-premultiplied RGBA raster: 4 bytes per pixel,
// row-major with no padding between rows.
type Frame struct {
	Pix    []uint8
	Width  int
	Height int
}

type PipelineStage interface {
	Process(f *Frame) error
}

func New(width, height int) *Frame {
	return &Frame{
		Pix:    make([]uint8, 4*width*height),
		Width:  width,
		Height: height,
	}
}

// FromImage copies img into a new packed frame anchored at the origin.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	f := New(b.Dx(), b.Dy())
	draw.Draw(f.Image(), image.Rect(0, 0, f.Width, f.Height), img, b.Min, draw.Src)
	return f
}

// Decode reads any registered image format
func Decode(r io.Reader) (*Frame, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), format, nil
}

// Image returns an NRGBA view sharing the frame's pixel buffer.
func (f *Frame) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

func (f *Frame) Validate() error {
	if f.Width < 0 || f.Height < 0 || len(f.Pix) != 4*f.Width*f.Height {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidDimensions, f.Width, f.Height, len(f.Pix))
	}
	return nil
}

func (f *Frame) Clone() *Frame {
	return &Frame{
		Pix:    append([]uint8(nil), f.Pix...),
		Width:  f.Width,
		Height: f.Height,
	}
}

func (f *Frame) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(f); err != nil {
			return err
		}
	}
	return nil
}

// Mirror flips the frame horizontally in place.
func Mirror(f *Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	stride := 4 * f.Width
	for y := 0; y < f.Height; y++ {
		row := f.Pix[y*stride : (y+1)*stride]
		for l, r := 0, f.Width-1; l < r; l, r = l+1, r-1 {
			lp, rp := row[4*l:4*l+4], row[4*r:4*r+4]
			for c := range 4 {
				lp[c], rp[c] = rp[c], lp[c]
			}
		}
	}
	return nil
}
