package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rm-hull/camfilter/internal/api"
)

func ListFilters(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "NAME\tLIVE PREVIEW"); err != nil {
		return err
	}
	for _, f := range api.Filters() {
		css := f.CSS
		if css == "" {
			css = "none"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", f.Name, css); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Grid stands in for the Style Grid until multi-filter variations exist
func Grid(w io.Writer) error {
	_, err := fmt.Fprintln(w, api.StyleGridMessage)
	return err
}
