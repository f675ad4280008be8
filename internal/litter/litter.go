// Package litter reads the plant-input litter NetCDF file named in the
// settings.
package litter

import (
	"fmt"

	"github.com/ctessum/cdf"
	"github.com/spf13/afero"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
)

// Fetcher inspects litter files on a filesystem.
type Fetcher struct {
	fs afero.Fs
}

// NewFetcher creates a Fetcher on fs.
func NewFetcher(fs afero.Fs) *Fetcher {
	return &Fetcher{fs: fs}
}

// Variables returns the variable names declared in the NetCDF file at path.
func (l *Fetcher) Variables(path string) ([]string, error) {
	file, err := l.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	nc, err := cdf.Open(file)
	if err != nil {
		return nil, fmt.Errorf("not a NetCDF file %s: %w", path, err)
	}
	return nc.Header.Variables(), nil
}

// FetchLitter records the variables of the litter file on f. An empty name
// clears them; an unreadable file is logged and also clears them.
func (l *Fetcher) FetchLitter(f *form.Form, fname string) {
	f.LitterVariables = nil
	if fname == "" {
		return
	}

	vars, err := l.Variables(fname)
	if err != nil {
		logging.Warn().Err(err).Str("session", f.SessionID).Str("file", fname).Msg("could not read litter file")
		return
	}
	f.LitterVariables = vars
	logging.Info().Str("file", fname).Strs("variables", vars).Msg("read litter file")
}
