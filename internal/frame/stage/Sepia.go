package stage

import (
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/effect"
	"github.com/rm-hull/camfilter/internal/frame"
)

type SepiaStage struct {
	Amount float64
}

// Process blends a full sepia tone over the frame, Amount being the opacity (0..1)
func (s *SepiaStage) Process(f *frame.Frame) error {
	src := f.Image()
	replace(f, blend.Opacity(src, effect.Sepia(src), s.Amount))
	return nil
}
