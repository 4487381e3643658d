package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
)

func (a *app) presetsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in column layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := layout.Presets()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), presets)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tREGIONS")
			for _, def := range presets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", def.ID, def.Label, strings.Join(def.RegionNames(), ","))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
