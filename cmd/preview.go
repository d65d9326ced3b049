package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rm-hull/camfilter/internal/capture"
	"github.com/rm-hull/camfilter/internal/export"
	"github.com/rm-hull/camfilter/internal/filter"
	"github.com/rm-hull/camfilter/internal/frame"
	"github.com/rm-hull/camfilter/internal/preview"
)

// Preview writes the live-preview approximation of a filter as a PNG
func Preview(ctx context.Context, inFile, outFile, filterName string, width int, facing string) error {
	kind, err := filter.Parse(filterName)
	if err != nil {
		return err
	}
	mode, err := capture.ParseFacingMode(facing)
	if err != nil {
		return err
	}

	src := &capture.FileSource{Path: inFile, Facing: mode}
	f, mirrored, err := src.Capture(ctx)
	if err != nil {
		return err
	}
	if mirrored {
		if err := frame.Mirror(f); err != nil {
			return err
		}
	}

	out, err := preview.Render(f, kind, width)
	if err != nil {
		return err
	}

	w, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outFile, err)
	}
	if err := (export.Encoder{Format: export.PNG}).Encode(w, out.Image()); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return w.Close()
}
