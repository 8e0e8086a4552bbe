// Command excise cuts spectral regions out of sampled spectra.
//
// Usage:
//
//	excise spectrum --input star.csv --unit Angstrom --lower "4205 Angstrom" --upper "4695 Angstrom"
//	excise spectrum --input star.csv --regions lines.yaml
//	excise band --input capture.txt --rate 48000 --lower "1 kHz" --upper "2 kHz" --db
//	excise units
package main

import (
	"os"

	"github.com/cwbudde/algo-spectral/cmd/excise/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
