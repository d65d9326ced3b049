package stage

import (
	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/camfilter/internal/frame"
)

type BrightnessStage struct {
	Factor float64
}

// Process scales brightness by Factor, where 1 leaves the frame unchanged
func (s *BrightnessStage) Process(f *frame.Frame) error {
	replace(f, adjust.Brightness(f.Image(), s.Factor-1))
	return nil
}
