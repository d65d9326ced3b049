package stage

import (
	"testing"

	"github.com/rm-hull/camfilter/internal/filter"
	"github.com/rm-hull/camfilter/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, r, g, b uint8) *frame.Frame {
	f := frame.New(w, h)
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = r, g, b, 255
	}
	return f
}

func TestMirrorThenFilter(t *testing.T) {
	// selfie capture: columns swap before the filter runs
	f := &frame.Frame{Width: 2, Height: 1, Pix: []uint8{200, 100, 50, 255, 10, 20, 30, 255}}
	require.NoError(t, f.Pipeline(&MirrorStage{}, &FilterStage{Kind: filter.Cool}))
	assert.Equal(t, []uint8{8, 20, 36, 255, 160, 100, 60, 255}, f.Pix)
}

func TestFilterStage_Errors(t *testing.T) {
	f := &frame.Frame{Width: 1, Height: 1, Pix: []uint8{1, 2, 3}}
	assert.ErrorIs(t, f.Pipeline(&FilterStage{Kind: filter.Warm}), filter.ErrInvalidFrameLength)

	f = solid(1, 1, 0, 0, 0)
	assert.ErrorIs(t, f.Pipeline(&FilterStage{Kind: filter.Kind(-3)}), filter.ErrUnknownFilterKind)
}

func TestResizeStage(t *testing.T) {
	f := solid(40, 20, 90, 90, 90)
	require.NoError(t, f.Pipeline(&ResizeStage{Width: 10}))
	assert.Equal(t, 10, f.Width)
	assert.Equal(t, 5, f.Height)
	assert.Len(t, f.Pix, 10*5*4)
	assert.InDelta(t, 90, float64(f.Pix[0]), 1)
	assert.InDelta(t, 255, float64(f.Pix[3]), 1)

	small := solid(4, 4, 1, 1, 1)
	require.NoError(t, small.Pipeline(&ResizeStage{Width: 10}))
	assert.Equal(t, 4, small.Width)
}

func TestPreviewStages_KeepDimensions(t *testing.T) {
	stages := []frame.PipelineStage{
		&SepiaStage{Amount: 0.5},
		&ContrastStage{Factor: 1.2},
		&BrightnessStage{Factor: 0.9},
		&HueRotateStage{Degrees: 90},
		&SaturateStage{Factor: 2},
	}
	for _, s := range stages {
		f := solid(3, 2, 120, 60, 30)
		require.NoError(t, f.Pipeline(s))
		assert.Equal(t, 3, f.Width)
		assert.Equal(t, 2, f.Height)
		assert.NoError(t, f.Validate())
	}
}

func TestBrightnessStage_Darkens(t *testing.T) {
	f := solid(1, 1, 200, 200, 200)
	require.NoError(t, f.Pipeline(&BrightnessStage{Factor: 0.5}))
	assert.Less(t, f.Pix[0], uint8(200))
}

func TestSepiaStage_Warms(t *testing.T) {
	f := solid(1, 1, 128, 128, 128)
	require.NoError(t, f.Pipeline(&SepiaStage{Amount: 1}))
	assert.Greater(t, f.Pix[0], f.Pix[2])
}

func TestSaturateStage_Desaturates(t *testing.T) {
	f := solid(1, 1, 220, 40, 40)
	require.NoError(t, f.Pipeline(&SaturateStage{Factor: 0}))
	assert.InDelta(t, float64(f.Pix[0]), float64(f.Pix[1]), 2)
	assert.InDelta(t, float64(f.Pix[1]), float64(f.Pix[2]), 2)
}

func TestHueRotateStage_Opposite(t *testing.T) {
	f := solid(1, 1, 255, 0, 0)
	require.NoError(t, f.Pipeline(&HueRotateStage{Degrees: 180}))
	assert.Less(t, f.Pix[0], f.Pix[2])
	assert.Less(t, f.Pix[0], f.Pix[1])
}
