// Package filter implements the exact per-pixel transforms applied to a
// captured still frame.
//
// Channel arithmetic is done on integers with the coefficients expressed as
// ratios, so results truncate toward zero before being clamped to [0, 255].
package filter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFrameLength = errors.New("frame length is not a multiple of 4")
	ErrUnknownFilterKind  = errors.New("unknown filter kind")
)

type pixelFunc func(px []uint8)

// Apply transforms every RGBA pixel of pix in place. Alpha is never touched.
// Nothing is modified when an error is returned.
func Apply(pix []uint8, kind Kind) error {
	if len(pix)%4 != 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidFrameLength, len(pix))
	}

	var fn pixelFunc
	switch kind {
	case Identity, Argentino:
		return nil
	case Vintage:
		fn = vintage
	case Disco:
		fn = disco
	case Cool:
		fn = cool
	case Warm:
		fn = warm
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFilterKind, int(kind))
	}

	for i := 0; i < len(pix); i += 4 {
		fn(pix[i : i+3 : i+3])
	}
	return nil
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// vintage is the classic sepia matrix, coefficients in thousandths.
func vintage(px []uint8) {
	r, g, b := int(px[0]), int(px[1]), int(px[2])
	px[0] = clamp((393*r + 769*g + 189*b) / 1000)
	px[1] = clamp((349*r + 686*g + 168*b) / 1000)
	px[2] = clamp((272*r + 534*g + 131*b) / 1000)
}

// disco swaps red and blue, then pushes each channel 50% away from the mean.
// C + (C - sum/3)/2 == (9C - sum)/6
func disco(px []uint8) {
	px[0], px[2] = px[2], px[0]
	r, g, b := int(px[0]), int(px[1]), int(px[2])
	sum := r + g + b
	px[0] = clamp((9*r - sum) / 6)
	px[1] = clamp((9*g - sum) / 6)
	px[2] = clamp((9*b - sum) / 6)
}

func cool(px []uint8) {
	px[0] = clamp(int(px[0]) * 8 / 10)
	px[2] = clamp(int(px[2]) * 12 / 10)
}

func warm(px []uint8) {
	px[0] = clamp(int(px[0]) * 12 / 10)
	px[1] = clamp(int(px[1]) * 11 / 10)
	px[2] = clamp(int(px[2]) * 8 / 10)
}
