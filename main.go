//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" web/"
//go:generate env GOOS=js GOARCH=wasm go build -o web/camfilter.wasm ./wasm

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/camfilter/cmd"
	"github.com/rm-hull/camfilter/internal"
	"github.com/rm-hull/camfilter/internal/export"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := newRootCmd(internal.LoadConfig())
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(cfg internal.Config) *cobra.Command {
	var rootPath string
	var port int
	var debug bool
	var inFile, outFile string
	var width int

	opts := cmd.CaptureOptions{}

	rootCmd := &cobra.Command{
		Use:  "camfilter",
		Long: `Camera capture with cosmetic photo filters`,
	}

	captureCmd := &cobra.Command{
		Use:   "capture (--in <file> | --url <snapshot>) [--filter <name>] [--facing user|environment] [--format jpeg|png|webp] [--out <dir>]",
		Short: "Capture a still, apply a filter and save it",
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := cmd.Capture(c.Context(), opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), path)
			return err
		},
	}
	captureCmd.Flags().StringVar(&opts.InFile, "in", "", "Image file to capture from")
	captureCmd.Flags().StringVar(&opts.URL, "url", "", "Camera snapshot URL to capture from")
	captureCmd.Flags().StringVar(&opts.Filter, "filter", cfg.Filter, "Filter to apply")
	captureCmd.Flags().StringVar(&opts.Facing, "facing", cfg.Facing, "Camera facing mode; user facing captures are mirrored")
	captureCmd.Flags().StringVar(&opts.Format, "format", cfg.Format, "Output image format")
	captureCmd.Flags().IntVar(&opts.Quality, "quality", cfg.Quality, "JPEG/WebP quality (1-100)")
	captureCmd.Flags().StringVar(&opts.OutputDir, "out", cfg.OutputDir, "Folder to save captures into")

	previewCmd := &cobra.Command{
		Use:   "preview --in <file> --out <file> [--filter <name>] [--width <px>]",
		Short: "Render the live-preview approximation of a filter",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Preview(c.Context(), inFile, outFile, opts.Filter, width, opts.Facing)
		},
	}
	previewCmd.Flags().StringVar(&inFile, "in", "", "Image file to preview")
	previewCmd.Flags().StringVar(&outFile, "out", "preview.png", "PNG file to write")
	previewCmd.Flags().StringVar(&opts.Filter, "filter", cfg.Filter, "Filter to preview")
	previewCmd.Flags().StringVar(&opts.Facing, "facing", cfg.Facing, "Camera facing mode")
	previewCmd.Flags().IntVar(&width, "width", 640, "Maximum preview width in pixels (0 keeps the original)")
	_ = previewCmd.MarkFlagRequired("in")

	filtersCmd := &cobra.Command{
		Use:   "filters",
		Short: "List the available filters",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.ListFilters(c.OutOrStdout())
		},
	}

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "Generate filter variations (not yet available)",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Grid(c.OutOrStdout())
		},
	}

	apiServerCmd := &cobra.Command{
		Use:   "api-server [--root <path>] [--port <port>] [--debug]",
		Short: "Start HTTP server for the capture page",
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			if debug {
				internal.EnvironmentVars()
			}
			cmd.ApiServer(rootPath, port, format, debug)
			return nil
		},
	}
	apiServerCmd.Flags().StringVar(&rootPath, "root", "./web", "Path to the capture page assets")
	apiServerCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			internal.ShowVersion()
		},
	}

	rootCmd.AddCommand(captureCmd, previewCmd, filtersCmd, gridCmd, apiServerCmd, versionCmd)
	return rootCmd
}
