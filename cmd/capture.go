package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rm-hull/camfilter/internal/camera"
	"github.com/rm-hull/camfilter/internal/capture"
	"github.com/rm-hull/camfilter/internal/export"
)

type CaptureOptions struct {
	InFile    string
	URL       string
	Facing    string
	Filter    string
	Format    string
	Quality   int
	OutputDir string
}

// Capture takes one still from a file or snapshot URL, filters it and saves
// it into the output directory, returning the saved path.
func Capture(ctx context.Context, opts CaptureOptions) (string, error) {
	facing, err := capture.ParseFacingMode(opts.Facing)
	if err != nil {
		return "", err
	}

	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return "", err
	}

	var newSource camera.SourceFunc
	switch {
	case opts.InFile != "" && opts.URL != "":
		return "", errors.New("only one of --in or --url may be given")
	case opts.InFile != "":
		newSource = func(facing capture.FacingMode) (capture.Source, error) {
			return &capture.FileSource{Path: opts.InFile, Facing: facing}, nil
		}
	case opts.URL != "":
		newSource = func(facing capture.FacingMode) (capture.Source, error) {
			return capture.NewSnapshotSource(opts.URL, facing), nil
		}
	default:
		return "", errors.New("one of --in or --url is required")
	}

	session, err := camera.NewSession(facing, newSource)
	if err != nil {
		return "", err
	}
	if err := session.SelectFilter(opts.Filter); err != nil {
		return "", err
	}

	still, err := session.Capture(ctx)
	if err != nil {
		return "", err
	}
	log.Printf("Captured %dx%d frame (filter=%s, mirrored=%t)",
		still.Frame.Width, still.Frame.Height, still.Filter, still.Mirrored)

	downloader := export.NewDownloader(opts.OutputDir, export.Encoder{Format: format, Quality: opts.Quality})
	path, err := downloader.Save(still.Frame.Image())
	if err != nil {
		return "", fmt.Errorf("failed to save capture: %w", err)
	}
	return path, nil
}
