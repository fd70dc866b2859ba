package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
)

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List resampling filters and their support radius",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRADIUS")
			for _, f := range resample.Filters() {
				fmt.Fprintf(w, "%s\t%g\n", f, f.Radius())
			}
			return w.Flush()
		},
	}
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered resize backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := ""
			if r := backend.Default(); r != nil {
				def = r.Name()
			}
			out := cmd.OutOrStdout()
			for _, name := range backend.Available() {
				if name == def {
					fmt.Fprintf(out, "%s (default)\n", name)
					continue
				}
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
