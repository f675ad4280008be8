// Package settings reads and writes the per-study settings file: the
// minGUI, cmnGUI and landuseGUI groups restored into and saved from a form.
package settings

import (
	"fmt"
	"maps"

	"github.com/rs/zerolog"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/config"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// Reader restores a form from a settings file.
type Reader struct {
	store  *storage.Store
	rules  config.Rules
	collab Collaborators
}

// NewReader creates a Reader.
func NewReader(store *storage.Store, rules config.Rules, collab Collaborators) *Reader {
	return &Reader{
		store:  store,
		rules:  rules,
		collab: collab.withDefaults(),
	}
}

// Read restores f from the settings file at path, creating a default file
// first if none exists.
//
// The first missing required key ends the restore with a *MissingKeyError;
// fields pushed before that point keep their new values. A missing minGUI
// key leaves the land-use and common fields untouched. A missing cmnGUI key
// resets the bounding box to the default and clears the CSV file name.
func (r *Reader) Read(f *form.Form, path string) error {
	log := logging.With().Str("session", f.SessionID).Str("file", path).Logger()

	var doc types.RawDocument
	if r.store.Exists(path) {
		if err := r.store.Get(path, &doc); err != nil {
			log.Error().Err(err).Msg("could not read config file")
			return fmt.Errorf("read settings: %w", err)
		}
		log.Info().Msg("read config file")
	} else {
		var err error
		if doc, err = WriteDefault(r.store, path, r.rules.DefaultBBox); err != nil {
			return err
		}
	}

	// area of interest
	minSec := &section{group: types.GroupMin, file: path, values: maps.Clone(doc.Section(types.GroupMin))}
	if minSec.values == nil {
		minSec.values = make(map[string]any)
	}
	for _, key := range r.rules.RequiredMin {
		if minSec.has(key) {
			continue
		}
		switch key {
		case types.KeyLitterNcFname:
			minSec.values[key] = ""
		case types.KeyPlantFuncType:
			minSec.values[key] = r.rules.DefaultPFT
		default:
			return r.missing(log, types.GroupMin, key, path)
		}
	}
	ms, err := decodeMin(minSec)
	if err != nil {
		log.Error().Err(err).Msg("invalid setting")
		return err
	}

	push(log, f.SetText(form.AOILabel, f.HWSDLabel))
	r.collab.Litter.FetchLitter(f, ms.LitterNcFname)
	push(log, f.SetText(form.LitterNcFname, ms.LitterNcFname))
	push(log, f.SetText(form.PlantFuncType, ms.PlantFuncType))

	f.BBox = ms.BBox
	push(log, f.SetText(form.WeatherResource, ms.WeatherResource))
	r.collab.Weather.ChangeWeatherResource(f, ms.WeatherResource)
	push(log, f.SetChecked(form.AveWeather, ms.AveWeather))

	// land uses
	landUse, hasLandUse := doc[types.GroupLandUse]
	if hasLandUse && f.MaskFname != "" {
		lu := &section{group: types.GroupLandUse, file: path, values: landUse}
		for _, class := range types.LandUseClasses {
			push(log, f.SetChecked(form.LandUseField(class), lu.flag(class)))
		}
		if lu.err != nil {
			log.Error().Err(lu.err).Msg("invalid setting")
			return lu.err
		}
		r.collab.LandUse.AdjustLandUse(f)
	} else {
		for _, class := range types.LandUseClasses {
			push(log, f.SetChecked(form.LandUseField(class), false))
		}
	}

	// common area
	cmnSec := &section{group: types.GroupCommon, file: path, values: doc.Section(types.GroupCommon)}
	for _, key := range r.rules.RequiredCommon {
		if !cmnSec.has(key) {
			f.BBox = r.rules.DefaultBBox
			f.CSVFname = ""
			return r.missing(log, types.GroupCommon, key, path)
		}
	}
	cs, err := decodeCommon(cmnSec)
	if err != nil {
		log.Error().Err(err).Msg("invalid setting")
		return err
	}

	push(log, f.SetText(form.Study, cs.Study))
	push(log, f.SetText(form.EquilMode, cs.EquilMode))
	push(log, f.SetIndex(form.GridResol, cs.GridResol))

	// record weather settings
	f.WeatherSettings[ms.WeatherResource] = r.collab.Recorder.Record(
		cs.ClimScenario, cs.HistStartYr, cs.HistEndYr, cs.FutStartYr, cs.FutEndYr)
	push(log, f.SetText(form.HistStartYr, cs.HistStartYr))
	push(log, f.SetText(form.HistEndYr, cs.HistEndYr))
	push(log, f.SetText(form.ClimScenario, cs.ClimScenario))
	push(log, f.SetText(form.FutStartYr, cs.FutStartYr))
	push(log, f.SetText(form.FutEndYr, cs.FutEndYr))

	// bounding box set up
	f.Area = r.collab.Area.Area(f.BBox)

	// avoids errors when exiting
	f.ReqResolDeg = nil
	f.ReqResolGranul = nil
	push(log, f.SetChecked(form.UseDomSoil, true))
	push(log, f.SetChecked(form.UseHighCover, true))

	if f.PythonExe == "" || f.RunsitesPy == "" || f.RunsitesConfig == "" {
		log.Warn().
			Str("python", f.PythonExe).
			Str("runsites", f.RunsitesPy).
			Str("runsitesConfig", f.RunsitesConfig).
			Msg("could not activate run widgets")
		push(log, f.SetEnabled(form.RunEcosse, false))
		push(log, f.SetEnabled(form.AutoSpec, false))
	}

	log.Debug().Str("study", cs.Study).Float64("area", f.Area).Msg("restored settings")
	return nil
}

func (r *Reader) missing(log zerolog.Logger, group, key, path string) error {
	err := &MissingKeyError{Group: group, Key: key, File: path}
	log.Error().Str("group", group).Str("key", key).Msg("required setting missing")
	return err
}

// push logs a field update the form refused. The restore carries on, as a
// selector silently keeps its value when asked for an item it lacks.
func push(log zerolog.Logger, err error) {
	if err != nil {
		log.Warn().Err(err).Msg("field not restored")
	}
}
