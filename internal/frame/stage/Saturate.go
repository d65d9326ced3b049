package stage

import (
	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/camfilter/internal/frame"
)

type SaturateStage struct {
	Factor float64
}

// Process scales colour saturation by Factor, where 1 leaves the frame unchanged
func (s *SaturateStage) Process(f *frame.Frame) error {
	replace(f, adjust.Saturation(f.Image(), s.Factor-1))
	return nil
}
