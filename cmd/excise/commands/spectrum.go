package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectral/dsp/region"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/units"
	"github.com/cwbudde/algo-spectral/internal/regionfile"
	"github.com/cwbudde/algo-spectral/internal/spectrumio"
)

var errRegionFlags = errors.New("either --regions or both --lower and --upper are required")

type regionFlags struct {
	lower   string
	upper   string
	regions string
}

func (f *regionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.lower, "lower", "", `lower bound, e.g. "4205 Angstrom"`)
	cmd.Flags().StringVar(&f.upper, "upper", "", `upper bound, e.g. "4695 Angstrom"`)
	cmd.Flags().StringVar(&f.regions, "regions", "", "YAML file of named regions")
}

func (f *regionFlags) resolve() ([]regionfile.Named, error) {
	if f.regions != "" {
		if f.lower != "" || f.upper != "" {
			return nil, errRegionFlags
		}
		return regionfile.Load(f.regions)
	}
	if f.lower == "" || f.upper == "" {
		return nil, errRegionFlags
	}

	lower, err := units.Parse(f.lower)
	if err != nil {
		return nil, fmt.Errorf("--lower: %w", err)
	}
	upper, err := units.Parse(f.upper)
	if err != nil {
		return nil, fmt.Errorf("--upper: %w", err)
	}
	r, err := region.New(lower, upper)
	if err != nil {
		return nil, err
	}
	return []regionfile.Named{{Name: "region", Region: r}}, nil
}

func spectrumCmd(a *app) *cobra.Command {
	var (
		input  string
		output string
		unit   string
		rf     regionFlags
	)

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Excise regions from a CSV spectrum",
		Long:  "Reads a CSV spectrum (coordinate,flux[,uncertainty]) and writes the samples\n" +
			"inside each region. Bounds inside a sample's span never include that sample.",
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
			a.logger.Debug("read spectrum",
				zap.String("input", input),
				zap.Int("samples", s.Len()),
				zap.Stringer("unit", axisUnit),
			)

			return a.withOutput(output, func(w io.Writer) error {
				return a.exciseAll(w, s, named)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", `CSV spectrum ("-" for stdin)`)
	cmd.Flags().StringVarP(&output, "output", "o", "-", `output CSV ("-" for stdout)`)
	cmd.Flags().StringVarP(&unit, "unit", "u", "Angstrom", "unit of the spectral axis")
	rf.register(cmd)
	return cmd
}

func (a *app) exciseAll(w io.Writer, s *spectrum.Spectrum, named []regionfile.Named) error {
	for _, n := range named {
		sub, err := s.Excise(n.Region)
		if err != nil {
			a.logger.Error("excise failed", zap.String("region", n.Name), zap.Error(err))
			return fmt.Errorf("region %s: %w", n.Name, err)
		}
		a.logger.Debug("excised region",
			zap.String("region", n.Name),
			zap.Stringer("bounds", n.Region),
			zap.Int("samples", sub.Len()),
		)

		if len(named) > 1 {
			if _, err := fmt.Fprintf(w, "# region %s %v\n", n.Name, n.Region); err != nil {
				return err
			}
		}
		if err := spectrumio.WriteCSV(w, sub); err != nil {
			return err
		}
	}
	return nil
}
