package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-spectral/internal/spectrumio"
)

func bandCmd(a *app) *cobra.Command {
	var (
		input   string
		output  string
		rate    float64
		fftSize int
		winName string
		db      bool
		rf      regionFlags
	)

	cmd := &cobra.Command{
		Use:   "band",
		Short: "Analyze time-domain samples and excise a frequency band",
		RunE: func(cmd *cobra.Command, args []string) error {
			winType, err := window.ParseType(winName)
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
			samples, err := spectrumio.ReadSamples(in)
			_ = in.Close()
			if err != nil {
				return fmt.Errorf("read %s: %w", input, err)
			}

			opts := []spectrum.AnalysisOption{
				spectrum.WithWindow(winType),
				spectrum.WithFFTSize(fftSize),
			}
			if db {
				opts = append(opts, spectrum.WithDecibels())
			}
			s, err := spectrum.Analyze(samples, rate, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("analyzed samples",
				zap.Int("samples", len(samples)),
				zap.Float64("rate", rate),
				zap.Int("bins", s.Len()),
				zap.Stringer("window", winType),
			)

			return a.withOutput(output, func(w io.Writer) error {
				return a.exciseAll(w, s, named)
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", `sample file ("-" for stdin)`)
	cmd.Flags().StringVarP(&output, "output", "o", "-", `output CSV ("-" for stdout)`)
	cmd.Flags().Float64VarP(&rate, "rate", "r", 48000, "sample rate in Hz")
	cmd.Flags().IntVar(&fftSize, "fft-size", 0, "FFT length (default: next power of two)")
	cmd.Flags().StringVarP(&winName, "window", "w", "hann", "analysis window: rectangular, hann, hamming, blackman, flat-top")
	cmd.Flags().BoolVar(&db, "db", false, "report magnitudes in dBFS")
	rf.register(cmd)
	return cmd
}
