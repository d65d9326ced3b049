package stage

import "github.com/rm-hull/camfilter/internal/frame"

type MirrorStage struct{}

// Process flips the frame horizontally, as seen by a user-facing camera
func (s *MirrorStage) Process(f *frame.Frame) error {
	return frame.Mirror(f)
}
