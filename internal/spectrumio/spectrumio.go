// Package spectrumio reads and writes spectra as CSV and reads plain sample
// streams.
package spectrumio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/units"
)

// ErrFormat is returned for malformed input rows.
var ErrFormat = errors.New("spectrumio: malformed input")

// ReadCSV reads rows of "coordinate,flux[,uncertainty]". Lines starting with
// '#' and a non-numeric first row are skipped. Coordinates are in axisUnit
// and must be strictly increasing.
func ReadCSV(r io.Reader, axisUnit units.Unit) (*spectrum.Spectrum, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var coords, flux, unc []float64
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		if len(rec) < 2 || len(rec) > 3 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: want 2 or 3 columns, got %d", ErrFormat, line, len(rec))
		}

		vals, err := parseRow(rec)
		if err != nil {
			if row == 0 {
				continue // header
			}
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, line, err)
		}

		coords = append(coords, vals[0])
		flux = append(flux, vals[1])
		if len(vals) == 3 {
			unc = append(unc, vals[2])
		}
	}

	if unc != nil && len(unc) != len(flux) {
		return nil, fmt.Errorf("%w: uncertainty given for %d of %d rows", ErrFormat, len(unc), len(flux))
	}

	axis, err := spectrum.NewTabularAxis(coords, axisUnit)
	if err != nil {
		return nil, err
	}

	var opts []spectrum.Option
	if unc != nil {
		opts = append(opts, spectrum.WithUncertainty(unc))
	}
	return spectrum.New(axis, flux, opts...)
}

// WriteCSV writes s with a header row naming the coordinate unit.
func WriteCSV(w io.Writer, s *spectrum.Spectrum) error {
	cw := csv.NewWriter(w)

	header := []string{"coord_" + s.Axis().Unit().Name(), "flux"}
	unc := s.Uncertainty()
	if unc != nil {
		header = append(header, "uncertainty")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	coords := s.Coordinates()
	flux := s.Flux()
	rec := make([]string, len(header))
	for i := range flux {
		rec[0] = formatFloat(coords[i])
		rec[1] = formatFloat(flux[i])
		if unc != nil {
			rec[2] = formatFloat(unc[i])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadSamples reads whitespace- or comma-separated floats. Lines starting
// with '#' are ignored.
func ReadSamples(r io.Reader) ([]float64, error) {
	var out []float64

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseRow(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
