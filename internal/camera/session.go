// Package camera holds the page-lifetime capture state: which camera is
// facing the user and which filter is selected. The filter engine itself
// never sees this state.
package camera

import (
	"context"
	"fmt"

	"github.com/rm-hull/camfilter/internal/capture"
	"github.com/rm-hull/camfilter/internal/filter"
	"github.com/rm-hull/camfilter/internal/frame"
	"github.com/rm-hull/camfilter/internal/frame/stage"
	"github.com/rm-hull/camfilter/internal/preview"
)

// SourceFunc opens the capture source for a facing mode; it is called again
// whenever the camera is flipped.
type SourceFunc func(facing capture.FacingMode) (capture.Source, error)

type Session struct {
	facing    capture.FacingMode
	filter    filter.Kind
	source    capture.Source
	newSource SourceFunc
}

// Still is a captured, filtered frame
type Still struct {
	Frame    *frame.Frame
	Filter   filter.Kind
	Mirrored bool
}

func NewSession(facing capture.FacingMode, newSource SourceFunc) (*Session, error) {
	s := &Session{
		facing:    facing,
		filter:    filter.Identity,
		newSource: newSource,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) open() error {
	src, err := s.newSource(s.facing)
	if err != nil {
		return fmt.Errorf("failed to open %s camera: %w", s.facing, err)
	}
	s.source = src
	return nil
}

func (s *Session) Facing() capture.FacingMode { return s.facing }

func (s *Session) Filter() filter.Kind { return s.filter }

// Flip switches between the front and back camera. The previous facing mode
// is kept if the other camera cannot be opened.
func (s *Session) Flip() error {
	prev := s.facing
	s.facing = prev.Flip()
	if err := s.open(); err != nil {
		s.facing = prev
		return err
	}
	return nil
}

func (s *Session) SelectFilter(name string) error {
	kind, err := filter.Parse(name)
	if err != nil {
		return err
	}
	s.filter = kind
	return nil
}

// PreviewCSS is the live-preview filter for the selected filter
func (s *Session) PreviewCSS() string {
	return preview.CSS(s.filter)
}

// Capture grabs a frame, mirrors it if the source is user facing, and applies
// the selected filter. The mirrored orientation is kept in the result.
func (s *Session) Capture(ctx context.Context) (*Still, error) {
	f, mirrored, err := s.source.Capture(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to capture frame: %w", err)
	}

	if err := Process(f, s.filter, mirrored); err != nil {
		return nil, err
	}

	return &Still{
		Frame:    f,
		Filter:   s.filter,
		Mirrored: mirrored,
	}, nil
}

// Process turns a raw frame into the captured still: mirrored first when it
// came from a user-facing camera, then filtered.
func Process(f *frame.Frame, kind filter.Kind, mirrored bool) error {
	stages := make([]frame.PipelineStage, 0, 2)
	if mirrored {
		stages = append(stages, &stage.MirrorStage{})
	}
	stages = append(stages, &stage.FilterStage{Kind: kind})

	if err := f.Pipeline(stages...); err != nil {
		return fmt.Errorf("failed to apply %s filter: %w", kind, err)
	}
	return nil
}

// ProcessPixels runs Process over a canvas buffer in place, as handed over by
// the page's getImageData.
func ProcessPixels(pix []uint8, width, height int, filterName string, mirrored bool) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", frame.ErrInvalidDimensions, width, height)
	}
	kind, err := filter.Parse(filterName)
	if err != nil {
		return err
	}
	f := &frame.Frame{Pix: pix, Width: width, Height: height}
	if err := f.Validate(); err != nil {
		return err
	}
	return Process(f, kind, mirrored)
}
