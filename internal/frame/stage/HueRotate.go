package stage

import (
	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/camfilter/internal/frame"
)

type HueRotateStage struct {
	Degrees int
}

// Process rotates every pixel's hue by Degrees around the colour wheel
func (s *HueRotateStage) Process(f *frame.Frame) error {
	replace(f, adjust.Hue(f.Image(), s.Degrees))
	return nil
}
