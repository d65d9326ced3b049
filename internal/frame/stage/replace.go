package stage

import (
	"image"

	"github.com/rm-hull/camfilter/internal/frame"
)

// replace swaps the frame's pixels for those of img, converting to
// non-premultiplied RGBA on the way.
func replace(f *frame.Frame, img image.Image) {
	*f = *frame.FromImage(img)
}
