package stage

import (
	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/camfilter/internal/frame"
)

type ContrastStage struct {
	Factor float64
}

// Process scales contrast by Factor, where 1 leaves the frame unchanged
func (s *ContrastStage) Process(f *frame.Frame) error {
	replace(f, adjust.Contrast(f.Image(), s.Factor-1))
	return nil
}
