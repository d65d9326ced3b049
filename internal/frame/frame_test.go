package frame

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror(t *testing.T) {
	t.Run("2x1 swaps columns", func(t *testing.T) {
		f := &Frame{Width: 2, Height: 1, Pix: []uint8{1, 2, 3, 4, 5, 6, 7, 8}}
		require.NoError(t, Mirror(f))
		assert.Equal(t, []uint8{5, 6, 7, 8, 1, 2, 3, 4}, f.Pix)
	})

	t.Run("3x2 reverses each row", func(t *testing.T) {
		f := &Frame{Width: 3, Height: 2, Pix: []uint8{
			1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
			4, 4, 4, 4, 5, 5, 5, 5, 6, 6, 6, 6,
		}}
		require.NoError(t, Mirror(f))
		assert.Equal(t, []uint8{
			3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1,
			6, 6, 6, 6, 5, 5, 5, 5, 4, 4, 4, 4,
		}, f.Pix)
	})

	t.Run("mirroring twice restores", func(t *testing.T) {
		f := New(5, 3)
		for i := range f.Pix {
			f.Pix[i] = uint8(i)
		}
		orig := bytes.Clone(f.Pix)
		require.NoError(t, Mirror(f))
		assert.NotEqual(t, orig, f.Pix)
		require.NoError(t, Mirror(f))
		assert.Equal(t, orig, f.Pix)
	})

	t.Run("mismatched dimensions", func(t *testing.T) {
		f := &Frame{Width: 2, Height: 2, Pix: make([]uint8, 8)}
		assert.ErrorIs(t, Mirror(f), ErrInvalidDimensions)
	})
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(10, 10, color.RGBA{255, 0, 0, 255})
	src.Set(11, 10, color.RGBA{0, 0, 255, 255})

	f := FromImage(src)
	assert.Equal(t, 2, f.Width)
	assert.Equal(t, 1, f.Height)
	assert.Equal(t, []uint8{255, 0, 0, 255, 0, 0, 255, 255}, f.Pix)
	assert.NoError(t, f.Validate())
}

func TestDecode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{10, 20, 30, 40})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	f, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, img.Pix, f.Pix)

	_, _, err = Decode(bytes.NewBufferString("not an image"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode image")
}

type recordStage struct {
	name  string
	calls *[]string
	err   error
}

func (s *recordStage) Process(f *Frame) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func TestPipeline(t *testing.T) {
	var calls []string
	f := New(1, 1)

	err := f.Pipeline(
		&recordStage{name: "a", calls: &calls},
		&recordStage{name: "b", calls: &calls, err: assert.AnError},
		&recordStage{name: "c", calls: &calls},
	)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestImageSharesPixels(t *testing.T) {
	f := New(2, 2)
	f.Image().SetNRGBA(1, 1, color.NRGBA{1, 2, 3, 4})
	assert.Equal(t, []uint8{1, 2, 3, 4}, f.Pix[12:16])

	c := f.Clone()
	c.Pix[12] = 99
	assert.Equal(t, uint8(1), f.Pix[12])
}
