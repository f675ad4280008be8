package settings

import (
	"fmt"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// Writer saves a form to the settings file of its study.
type Writer struct {
	store     *storage.Store
	configDir string
	prefix    string
	recorder  WeatherRecorder
}

// NewWriter creates a Writer for settings files named prefix+study+".txt"
// in configDir. A nil recorder stores its arguments unchanged.
func NewWriter(store *storage.Store, configDir, prefix string, recorder WeatherRecorder) *Writer {
	if recorder == nil {
		recorder = RecordFunc(recordAsIs)
	}
	return &Writer{store: store, configDir: configDir, prefix: prefix, recorder: recorder}
}

// Path returns the settings file path for study.
func (w *Writer) Path(study string) string {
	return SettingsPath(w.configDir, w.prefix, study)
}

// Build returns the settings document for the current form values.
func Build(f *form.Form) types.Settings {
	return types.Settings{
		Min: types.MinSettings{
			AveWeather:      f.Checked(form.AveWeather),
			BBox:            f.BBox,
			LitterNcFname:   f.Text(form.LitterNcFname),
			PlantFuncType:   f.Text(form.PlantFuncType),
			SinglePoint:     false,
			UsePolygon:      false,
			WeatherResource: f.Text(form.WeatherResource),
		},
		Common: types.CommonSettings{
			ClimScenario: f.Text(form.ClimScenario),
			EquilMode:    f.Text(form.EquilMode),
			FutEndYr:     f.Text(form.FutEndYr),
			FutStartYr:   f.Text(form.FutStartYr),
			GridResol:    f.Index(form.GridResol),
			HistEndYr:    f.Text(form.HistEndYr),
			HistStartYr:  f.Text(form.HistStartYr),
			Study:        f.Text(form.Study),
		},
		LandUse: types.LandUseFromFlags(f.LandUseFlags()),
	}
}

// Write saves the current selections and returns the file written. The
// weather settings of the selected resource are remembered on f first.
// Nothing is written, and no error returned, when the study name is empty.
// When verbose is set the log says whether a file was replaced or created.
func (w *Writer) Write(f *form.Form, verbose bool) (string, error) {
	study := f.Text(form.Study)
	path := w.Path(study)

	weatherResource := f.Text(form.WeatherResource)
	f.WeatherSettings[weatherResource] = w.recorder.Record(
		f.Text(form.ClimScenario),
		f.Text(form.HistStartYr),
		f.Text(form.HistEndYr),
		f.Text(form.FutStartYr),
		f.Text(form.FutEndYr),
	)

	doc := Build(f)

	if study == "" {
		return "", nil
	}

	result, err := w.store.Put(path, doc)
	if err != nil {
		logging.Error().Err(err).Str("file", path).Msg("could not write configuration file")
		return "", fmt.Errorf("write settings: %w", err)
	}

	log := logging.With().Str("session", f.SessionID).Str("file", path).Logger()
	if verbose {
		descriptor := "Wrote new"
		if result.Existed {
			descriptor = "Overwrote existing"
		}
		log.Info().Msg(descriptor + " configuration file")
	}
	if result.Existed {
		if patch, added, deleted := storage.Diff(path, result.Previous, result.Data); patch != "" {
			log.Debug().Int("added", added).Int("deleted", deleted).Str("diff", patch).Msg("configuration changed")
		}
	}
	return path, nil
}
