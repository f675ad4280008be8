// Package types defines the documents exchanged with settings, study
// definition and land-use/plant-input files.
package types

// Settings file section names.
const (
	GroupMin     = "minGUI"
	GroupCommon  = "cmnGUI"
	GroupLandUse = "landuseGUI"
)

// Settings file keys.
const (
	KeyWeatherResource = "weatherResource"
	KeyAveWeather      = "aveWthrFlag"
	KeyBBox            = "bbox"
	KeyPlantFuncType   = "plntFncTyp"
	KeyLitterNcFname   = "piNcFname"
	KeySinglePoint     = "snglPntFlag"
	KeyUsePolygon      = "usePolyFlag"
	KeyCordex          = "cordexFlag"
	KeyLuPiJSONFname   = "luPiJsonFname"

	KeyStudy        = "study"
	KeyHistStartYr  = "histStrtYr"
	KeyHistEndYr    = "histEndYr"
	KeyClimScenario = "climScnr"
	KeyFutStartYr   = "futStrtYr"
	KeyFutEndYr     = "futEndYr"
	KeyGridResol    = "gridResol"
	KeyEquilMode    = "eqilMode"
)

// LandUseClasses lists the landuseGUI flags in the order they are shown.
var LandUseClasses = []string{"cropland", "pasture", "other", "forest", "grassland", "all"}

// RawDocument is a settings file as loaded, before reconciliation.
// Sections and keys may be missing.
type RawDocument map[string]map[string]any

// Section returns the named section, or nil if absent.
func (d RawDocument) Section(group string) map[string]any {
	if d == nil {
		return nil
	}
	return d[group]
}

// Settings is the document written by the settings writer.
// Fields are declared in key order so struct and map encodings agree.
type Settings struct {
	Common  CommonSettings  `json:"cmnGUI"`
	LandUse LandUseSettings `json:"landuseGUI"`
	Min     MinSettings     `json:"minGUI"`
}

// MinSettings holds the area-of-interest settings (minGUI).
type MinSettings struct {
	AveWeather      bool   `json:"aveWthrFlag"`
	BBox            BBox   `json:"bbox"`
	LitterNcFname   string `json:"piNcFname"`
	PlantFuncType   string `json:"plntFncTyp"`
	SinglePoint     bool   `json:"snglPntFlag"`
	UsePolygon      bool   `json:"usePolyFlag"`
	WeatherResource string `json:"weatherResource"`
}

// CommonSettings holds the study and period settings (cmnGUI).
// Years are kept as strings because they are selector texts.
type CommonSettings struct {
	ClimScenario string `json:"climScnr"`
	EquilMode    string `json:"eqilMode"`
	FutEndYr     string `json:"futEndYr"`
	FutStartYr   string `json:"futStrtYr"`
	GridResol    int    `json:"gridResol"`
	HistEndYr    string `json:"histEndYr"`
	HistStartYr  string `json:"histStrtYr"`
	Study        string `json:"study"`
}

// LandUseSettings holds the land-use class flags (landuseGUI).
type LandUseSettings struct {
	All       bool `json:"all"`
	Cropland  bool `json:"cropland"`
	Forest    bool `json:"forest"`
	Grassland bool `json:"grassland"`
	Other     bool `json:"other"`
	Pasture   bool `json:"pasture"`
}

// Flags returns the flags keyed by land-use class.
func (l LandUseSettings) Flags() map[string]bool {
	return map[string]bool{
		"cropland":  l.Cropland,
		"pasture":   l.Pasture,
		"other":     l.Other,
		"forest":    l.Forest,
		"grassland": l.Grassland,
		"all":       l.All,
	}
}

// LandUseFromFlags is the inverse of Flags. Unknown classes are ignored.
func LandUseFromFlags(flags map[string]bool) LandUseSettings {
	return LandUseSettings{
		All:       flags["all"],
		Cropland:  flags["cropland"],
		Forest:    flags["forest"],
		Grassland: flags["grassland"],
		Other:     flags["other"],
		Pasture:   flags["pasture"],
	}
}
