package stage

import (
	"github.com/rm-hull/camfilter/internal/filter"
	"github.com/rm-hull/camfilter/internal/frame"
)

type FilterStage struct {
	Kind filter.Kind
}

// Process applies the exact per-pixel transform for Kind to the frame in place
func (s *FilterStage) Process(f *frame.Frame) error {
	return filter.Apply(f.Pix, s.Kind)
}
