// Package regionfile loads named spectral regions from YAML.
//
//	regions:
//	  - name: hbeta
//	    lower: 4850 Angstrom
//	    upper: 4870 Angstrom
package regionfile

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spectral/dsp/region"
	"github.com/cwbudde/algo-spectral/dsp/units"
)

// ErrNoRegions is returned for a file that defines no regions.
var ErrNoRegions = errors.New("regionfile: no regions defined")

// Named is a region with its name from the file.
type Named struct {
	Name   string
	Region region.Region
}

type file struct {
	Regions []entry `yaml:"regions"`
}

type entry struct {
	Name  string `yaml:"name"`
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper"`
}

// Load reads and parses the region file at path.
func Load(path string) ([]Named, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("regionfile: %w", err)
	}
	named, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return named, nil
}

// Parse decodes region definitions. Every invalid entry is reported; the
// returned error combines all of them.
func Parse(data []byte) ([]Named, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("regionfile: %w", err)
	}
	if len(f.Regions) == 0 {
		return nil, ErrNoRegions
	}

	var (
		out  = make([]Named, 0, len(f.Regions))
		seen = make(map[string]int, len(f.Regions))
		errs error
	)
	for i, e := range f.Regions {
		if e.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("region #%d: missing name", i+1))
			continue
		}
		if prev, ok := seen[e.Name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("region %q: duplicate of region #%d", e.Name, prev+1))
			continue
		}
		seen[e.Name] = i

		r, err := parseEntry(e)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("region %q: %w", e.Name, err))
			continue
		}
		out = append(out, Named{Name: e.Name, Region: r})
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func parseEntry(e entry) (region.Region, error) {
	lower, err := units.Parse(e.Lower)
	if err != nil {
		return region.Region{}, fmt.Errorf("lower: %w", err)
	}
	upper, err := units.Parse(e.Upper)
	if err != nil {
		return region.Region{}, fmt.Errorf("upper: %w", err)
	}
	return region.New(lower, upper)
}
