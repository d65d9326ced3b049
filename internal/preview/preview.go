// Package preview describes the cheap live-preview approximation of each
// filter. The same table renders as a CSS filter string for the page's video
// element, or as a bild pipeline over a downscaled frame for the CLI.
// Numeric agreement with the exact capture transform is not a goal.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rm-hull/camfilter/internal/filter"
	"github.com/rm-hull/camfilter/internal/frame"
	"github.com/rm-hull/camfilter/internal/frame/stage"
)

type Op string

const (
	Sepia      Op = "sepia"
	Contrast   Op = "contrast"
	Brightness Op = "brightness"
	HueRotate  Op = "hue-rotate"
	Saturate   Op = "saturate"
)

type Adjustment struct {
	Op     Op
	Amount float64
}

func (a Adjustment) String() string {
	amount := strconv.FormatFloat(a.Amount, 'f', -1, 64)
	if a.Op == HueRotate {
		amount += "deg"
	}
	return fmt.Sprintf("%s(%s)", a.Op, amount)
}

func (a Adjustment) stage() (frame.PipelineStage, error) {
	switch a.Op {
	case Sepia:
		return &stage.SepiaStage{Amount: a.Amount}, nil
	case Contrast:
		return &stage.ContrastStage{Factor: a.Amount}, nil
	case Brightness:
		return &stage.BrightnessStage{Factor: a.Amount}, nil
	case HueRotate:
		return &stage.HueRotateStage{Degrees: int(a.Amount)}, nil
	case Saturate:
		return &stage.SaturateStage{Factor: a.Amount}, nil
	}
	return nil, fmt.Errorf("unsupported preview adjustment %q", a.Op)
}

var adjustments = map[filter.Kind][]Adjustment{
	filter.Identity: {},
	filter.Vintage: {
		{Sepia, 0.5},
		{Contrast, 1.2},
		{Brightness, 0.9},
	},
	filter.Disco: {
		{HueRotate, 90},
		{Saturate, 2},
	},
	filter.Argentino: {
		{Contrast, 1.3},
		{Saturate, 1.2},
		{HueRotate, -30},
	},
	filter.Cool: {
		{Brightness, 1.1},
		{Contrast, 1.1},
		{HueRotate, 180},
		{Saturate, 1.3},
	},
	filter.Warm: {
		{Brightness, 1.1},
		{Sepia, 0.2},
		{HueRotate, -20},
		{Saturate, 1.5},
	},
}

// Adjustments returns a copy of the preview adjustments for kind, in the
// order they are applied.
func Adjustments(kind filter.Kind) ([]Adjustment, error) {
	adj, ok := adjustments[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", filter.ErrUnknownFilterKind, int(kind))
	}
	return append([]Adjustment(nil), adj...), nil
}

// CSS returns the CSS filter property value for kind; unknown kinds and
// Identity both yield the empty string.
func CSS(kind filter.Kind) string {
	adj := adjustments[kind]
	parts := make([]string, len(adj))
	for i, a := range adj {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func Stages(kind filter.Kind) ([]frame.PipelineStage, error) {
	adj, err := Adjustments(kind)
	if err != nil {
		return nil, err
	}
	stages := make([]frame.PipelineStage, 0, len(adj))
	for _, a := range adj {
		s, err := a.stage()
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, nil
}

// Render produces a preview of src with kind applied, scaled down to at most
// width pixels across (width <= 0 keeps the original size). src is not modified.
func Render(src *frame.Frame, kind filter.Kind, width int) (*frame.Frame, error) {
	stages, err := Stages(kind)
	if err != nil {
		return nil, err
	}
	out := src.Clone()
	stages = append([]frame.PipelineStage{&stage.ResizeStage{Width: width}}, stages...)
	if err := out.Pipeline(stages...); err != nil {
		return nil, fmt.Errorf("failed to render %s preview: %w", kind, err)
	}
	return out, nil
}
