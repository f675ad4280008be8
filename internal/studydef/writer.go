// Package studydef writes the study definition file read by the simulation
// runner.
package studydef

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// ErrUnknownLandUse reports a land use with no configured abbreviation.
var ErrUnknownLandUse = errors.New("no abbreviation for land use")

// landUseSeparator joins land-use abbreviations into a transition code.
const landUseSeparator = "2"

// GridCellCalculator resolves the selected grid resolution to decimal
// degrees.
type GridCellCalculator interface {
	Resolution(f *form.Form) float64
}

// GridCellFunc adapts a function to GridCellCalculator.
type GridCellFunc func(f *form.Form) float64

func (fn GridCellFunc) Resolution(f *form.Form) float64 { return fn(f) }

// Path returns the study definition file for study in simsDir.
func Path(simsDir, study string) string {
	return filepath.Join(simsDir, study+"_study_definition.txt")
}

// Writer writes study definition files into a simulations directory.
type Writer struct {
	store   *storage.Store
	simsDir string
	grid    GridCellCalculator
}

// NewWriter creates a Writer. A nil grid reports a resolution of zero.
func NewWriter(store *storage.Store, simsDir string, grid GridCellCalculator) *Writer {
	if grid == nil {
		grid = GridCellFunc(func(*form.Form) float64 { return 0 })
	}
	return &Writer{store: store, simsDir: simsDir, grid: grid}
}

// Write builds the study definition from f and writes it, returning the
// file written. It does nothing when the form has no land-use/plant-input
// content, and only logs a warning when the study name is empty.
func (w *Writer) Write(f *form.Form) (string, error) {
	if !f.LuPi.Has(types.LandUsePIMarker) {
		return "", nil
	}

	defn, err := Build(f, w.grid)
	if err != nil {
		logging.Error().Err(err).Str("session", f.SessionID).Msg("could not build study definition")
		return "", err
	}

	if defn.Study == "" {
		logging.Warn().Str("session", f.SessionID).Msg("study not defined - could not write study definition file")
		return "", nil
	}

	path := Path(w.simsDir, defn.Study)
	if _, err := w.store.Put(path, types.StudyDefinitionFile{StudyDefn: *defn}); err != nil {
		return "", fmt.Errorf("write study definition: %w", err)
	}
	logging.Info().Str("file", path).Str("land_use", defn.LandUse).Msg("wrote study definition file")
	return path, nil
}

// Build assembles the study definition for f.
func Build(f *form.Form, grid GridCellCalculator) (*types.StudyDefinition, error) {
	landUse, err := LandUseCode(f.LuPi, f.LandUseAbbrevs)
	if err != nil {
		return nil, err
	}

	return &types.StudyDefinition{
		BBox:          ParseBBox(f),
		LuPiJSONFname: f.Text(form.LuPiJSONFname),
		Study:         f.Text(form.Study),
		LandUse:       landUse,
		HistStartYr:   f.Text(form.HistStartYr),
		HistEndYr:     f.Text(form.HistEndYr),
		ClimScenario:  ClimateScenario(f.Text(form.WeatherResource), f.Text(form.ClimScenario)),
		FutStartYr:    f.Text(form.FutStartYr),
		FutEndYr:      f.Text(form.FutEndYr),
		Province:      types.Placeholder,
		Resolution:    grid.Resolution(f),
		ShapeFile:     types.Placeholder,
		Version:       f.Version,
	}, nil
}

// ParseBBox reads the four corner fields. The fields are parsed in order;
// once one fails, the upper-right corner is zero and a lower-left value not
// yet parsed stays zero. NaN and infinities count as failures since JSON
// cannot carry them.
func ParseBBox(f *form.Form) types.BBox {
	var bbox types.BBox
	for i, name := range []string{form.LLLon, form.LLLat, form.URLon, form.URLat} {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.Text(name)), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			bbox[2], bbox[3] = 0, 0
			return bbox
		}
		bbox[i] = v
	}
	return bbox
}

// ClimateScenario returns the scenario for the runner: the selected
// scenario for CRU weather, otherwise the weather resource itself.
func ClimateScenario(weatherResource, scenario string) string {
	if weatherResource == types.CRU {
		return scenario
	}
	return weatherResource
}

// LandUseCode concatenates the abbreviation of each step followed by "2"
// and then strips every trailing "2". Only the final separator goes, so
// forest then cropland with abbreviations F and C gives "F2C"; an
// abbreviation that itself ends in "2" loses that character too when last.
func LandUseCode(content *types.LandUsePIContent, abbrevs map[string]string) (string, error) {
	if content == nil {
		return "", nil
	}
	var b strings.Builder
	for _, step := range content.Steps {
		abbrev, ok := abbrevs[step.LandUse]
		if !ok {
			return "", fmt.Errorf("%w %q (step %s)", ErrUnknownLandUse, step.LandUse, step.Index)
		}
		b.WriteString(abbrev)
		b.WriteString(landUseSeparator)
	}
	return strings.TrimRight(b.String(), landUseSeparator), nil
}
