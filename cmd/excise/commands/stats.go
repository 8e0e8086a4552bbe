package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/units"
	"github.com/cwbudde/algo-spectral/internal/regionfile"
	"github.com/cwbudde/algo-spectral/internal/spectrumio"
	"github.com/cwbudde/algo-spectral/stats/spectral"
)

func statsCmd(a *app) *cobra.Command {
	var (
		input string
		unit  string
		rf    regionFlags
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the flux inside regions of a CSV spectrum",
		RunE: func(cmd *cobra.Command, args []string) error {
			axisUnit, err := units.Lookup(unit)
			if err != nil {
				return err
			}
			named, err := rf.resolve()
			if err != nil {
				return err
			}

			in, err := a.openInput(input)
			if err != nil {
				return err
			}
			s, err := spectrumio.ReadCSV(in, axisUnit)
			_ = in.Close()
			if err != nil {
				return fmt.Errorf("read %s: %w", input, err)
			}
			return a.writeStats(a.stdout, s, named)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", `CSV spectrum ("-" for stdin)`)
	cmd.Flags().StringVarP(&unit, "unit", "u", "Angstrom", "unit of the spectral axis")
	rf.register(cmd)
	return cmd
}

func (a *app) writeStats(w io.Writer, s *spectrum.Spectrum, named []regionfile.Named) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Region\tSamples\tPeak\tPeak at\tCentroid\tIntegral"); err != nil {
		return err
	}
	for _, n := range named {
		st, err := spectral.CalculateIn(s, n.Region)
		if err != nil {
			a.logger.Error("stats failed", zap.String("region", n.Name), zap.Error(err))
			return fmt.Errorf("region %s: %w", n.Name, err)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%g\t%g\t%g\t%g\n",
			n.Name, st.Count, st.Max, st.MaxAt, st.Centroid, st.Integral); err != nil {
			return err
		}
	}
	return tw.Flush()
}
