package settings

import (
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// AreaCalculator computes the area of a bounding box.
type AreaCalculator interface {
	Area(bbox types.BBox) float64
}

// AreaFunc adapts a function to AreaCalculator.
type AreaFunc func(bbox types.BBox) float64

func (fn AreaFunc) Area(bbox types.BBox) float64 { return fn(bbox) }

// LitterFetcher loads the plant-input litter NetCDF file named in the
// settings into the form.
type LitterFetcher interface {
	FetchLitter(f *form.Form, fname string)
}

// LitterFunc adapts a function to LitterFetcher.
type LitterFunc func(f *form.Form, fname string)

func (fn LitterFunc) FetchLitter(f *form.Form, fname string) { fn(f, fname) }

// WeatherChanger reacts to a new weather resource selection, typically by
// repopulating the year and scenario selectors.
type WeatherChanger interface {
	ChangeWeatherResource(f *form.Form, resource string)
}

// WeatherChangeFunc adapts a function to WeatherChanger.
type WeatherChangeFunc func(f *form.Form, resource string)

func (fn WeatherChangeFunc) ChangeWeatherResource(f *form.Form, resource string) { fn(f, resource) }

// WeatherRecorder packs the period and scenario choices of one weather
// resource.
type WeatherRecorder interface {
	Record(scenario, histStart, histEnd, futStart, futEnd string) types.WeatherSettings
}

// RecordFunc adapts a function to WeatherRecorder.
type RecordFunc func(scenario, histStart, histEnd, futStart, futEnd string) types.WeatherSettings

func (fn RecordFunc) Record(scenario, histStart, histEnd, futStart, futEnd string) types.WeatherSettings {
	return fn(scenario, histStart, histEnd, futStart, futEnd)
}

// LandUseAdjuster updates dependent land-use checkboxes after the flags are
// restored.
type LandUseAdjuster interface {
	AdjustLandUse(f *form.Form)
}

// LandUseFunc adapts a function to LandUseAdjuster.
type LandUseFunc func(f *form.Form)

func (fn LandUseFunc) AdjustLandUse(f *form.Form) { fn(f) }

// Collaborators are the external handlers the reader calls while restoring
// a form. Nil members are replaced by no-ops, and a nil Recorder by one that
// stores its arguments unchanged.
type Collaborators struct {
	Area     AreaCalculator
	Litter   LitterFetcher
	Weather  WeatherChanger
	Recorder WeatherRecorder
	LandUse  LandUseAdjuster
}

func (c Collaborators) withDefaults() Collaborators {
	if c.Area == nil {
		c.Area = AreaFunc(func(types.BBox) float64 { return 0 })
	}
	if c.Litter == nil {
		c.Litter = LitterFunc(func(*form.Form, string) {})
	}
	if c.Weather == nil {
		c.Weather = WeatherChangeFunc(func(*form.Form, string) {})
	}
	if c.Recorder == nil {
		c.Recorder = RecordFunc(recordAsIs)
	}
	if c.LandUse == nil {
		c.LandUse = LandUseFunc(func(*form.Form) {})
	}
	return c
}

func recordAsIs(scenario, histStart, histEnd, futStart, futEnd string) types.WeatherSettings {
	return types.WeatherSettings{
		Scenario:    scenario,
		HistStartYr: histStart,
		HistEndYr:   histEnd,
		FutStartYr:  futStart,
		FutEndYr:    futEnd,
	}
}
