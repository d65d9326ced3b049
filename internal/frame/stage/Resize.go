package stage

import (
	"image"

	"github.com/rm-hull/camfilter/internal/frame"
	"golang.org/x/image/draw"
)

type ResizeStage struct {
	Width int
}

// Process scales the frame down to Width, keeping the aspect ratio.
// Frames already narrower than Width are left alone.
func (s *ResizeStage) Process(f *frame.Frame) error {
	if s.Width <= 0 || f.Width <= s.Width {
		return nil
	}
	height := max(1, f.Height*s.Width/f.Width)
	scaled := image.NewNRGBA(image.Rect(0, 0, s.Width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), f.Image(), f.Image().Bounds(), draw.Src, nil)

	f.Pix = scaled.Pix
	f.Width = s.Width
	f.Height = height
	return nil
}
