package commands

import (
	"errors"
	"strconv"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/config"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/geo"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/litter"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/settings"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/studydef"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/weather"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// session ties one form to the settings and study definition files named
// by the loaded configuration.
type session struct {
	cfg       *config.Config
	store     *storage.Store
	catalog   *weather.Catalog
	form      *form.Form
	reader    *settings.Reader
	writer    *settings.Writer
	studyDefs *studydef.Writer
}

func newSession(store *storage.Store) (*session, error) {
	workDir, err := GetWorkDir(configDir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, err
	}

	catalog := weather.NewCatalog(cfg.WeatherResources)
	f := form.New(form.Options{
		PlantFuncTypes:   cfg.PlantFuncTypes,
		WeatherResources: catalog.Names(),
		GridResolutions:  geo.ResolutionLabels(),
		LandUseAbbrevs:   cfg.LandUseAbbrevs,
		PythonExe:        cfg.PythonExe,
		RunsitesPy:       cfg.RunsitesPy,
		RunsitesConfig:   cfg.RunsitesConfig,
		Version:          cfg.Version,
	})
	f.MaskFname = maskFname

	collab := settings.Collaborators{
		Area:     settings.AreaFunc(geo.Area),
		Litter:   litter.NewFetcher(store.Fs()),
		Weather:  catalog,
		Recorder: settings.RecordFunc(weather.Record),
		LandUse:  settings.LandUseFunc(form.AdjustLandUse),
	}

	logging.Debug().
		Str("session", f.SessionID).
		Str("configDir", cfg.ConfigDir).
		Str("simsDir", cfg.SimsDir).
		Msg("session created")

	return &session{
		cfg:       cfg,
		store:     store,
		catalog:   catalog,
		form:      f,
		reader:    settings.NewReader(store, cfg.Rules, collab),
		writer:    settings.NewWriter(store, cfg.ConfigDir, cfg.Prefix, settings.RecordFunc(weather.Record)),
		studyDefs: studydef.NewWriter(store, cfg.SimsDir, studydef.GridCellFunc(geo.GridCell)),
	}, nil
}

func (s *session) settingsPath(study string) string {
	return settings.SettingsPath(s.cfg.ConfigDir, s.cfg.Prefix, study)
}

// load restores the form from the settings file of study and returns the
// settings file path. A reconciliation error leaves a partly restored form.
func (s *session) load(study string) (string, error) {
	path := s.settingsPath(study)
	err := s.reader.Read(s.form, path)
	s.syncCorners()
	return path, err
}

// incomplete reports whether err only says the settings were incomplete or
// invalid, as opposed to unreadable.
func incomplete(err error) bool {
	return errors.Is(err, settings.ErrMissingKey) || errors.Is(err, settings.ErrInvalidValue)
}

// syncCorners copies the bounding box into the corner entry fields.
func (s *session) syncCorners() {
	for i, name := range []string{form.LLLon, form.LLLat, form.URLon, form.URLat} {
		s.form.SetText(name, strconv.FormatFloat(s.form.BBox[i], 'f', -1, 64))
	}
}

// setBBox sets the bounding box and the corner entry fields.
func (s *session) setBBox(bbox types.BBox) {
	s.form.BBox = bbox
	s.syncCorners()
}

// loadLandUsePI attaches a land-use/plant-input file to the form.
func (s *session) loadLandUsePI(path string) error {
	content, err := studydef.LoadLandUsePI(s.store, path)
	if err != nil {
		return err
	}
	s.form.LuPi = content
	return s.form.SetText(form.LuPiJSONFname, path)
}
