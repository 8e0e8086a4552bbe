package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/dsp/units"
)

func unitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the units accepted in bounds and --unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Unit\tDimension\n----\t---------\n"); err != nil {
				return err
			}
			for _, name := range units.Names() {
				u, err := units.Lookup(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", name, u.Dimension()); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}
