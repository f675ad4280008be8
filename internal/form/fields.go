package form

import "github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"

// Kind is the widget kind behind a field.
type Kind int

const (
	// Text is a free text entry or label.
	Text Kind = iota
	// Combo is a selector. With no items it accepts any text.
	Combo
	// Check is a checkbox.
	Check
	// Action is a button; only its enabled state is meaningful.
	Action
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Combo:
		return "combo"
	case Check:
		return "check"
	case Action:
		return "action"
	default:
		return "unknown"
	}
}

// Field names.
const (
	AOILabel        = "aoiLabel"
	LitterNcFname   = "litterNcFname"
	PlantFuncType   = "plantFuncType"
	WeatherResource = "weatherResource"
	AveWeather      = "aveWeather"

	Study        = "study"
	EquilMode    = "equilMode"
	GridResol    = "gridResol"
	HistStartYr  = "histStartYr"
	HistEndYr    = "histEndYr"
	ClimScenario = "climScenario"
	FutStartYr   = "futStartYr"
	FutEndYr     = "futEndYr"

	LLLon         = "llLon"
	LLLat         = "llLat"
	URLon         = "urLon"
	URLat         = "urLat"
	LuPiJSONFname = "luPiJsonFname"

	UseDomSoil   = "useDomSoil"
	UseHighCover = "useHighCover"

	RunEcosse = "runEcosse"
	AutoSpec  = "autoSpec"
)

// LandUseField returns the checkbox field name for a land-use class.
func LandUseField(class string) string {
	return "lu_" + class
}

type fieldSpec struct {
	name string
	kind Kind
}

func fieldSpecs() []fieldSpec {
	specs := []fieldSpec{
		{AOILabel, Text},
		{LitterNcFname, Text},
		{PlantFuncType, Combo},
		{WeatherResource, Combo},
		{AveWeather, Check},
		{Study, Text},
		{EquilMode, Text},
		{GridResol, Combo},
		{HistStartYr, Combo},
		{HistEndYr, Combo},
		{ClimScenario, Combo},
		{FutStartYr, Combo},
		{FutEndYr, Combo},
		{LLLon, Text},
		{LLLat, Text},
		{URLon, Text},
		{URLat, Text},
		{LuPiJSONFname, Text},
		{UseDomSoil, Check},
		{UseHighCover, Check},
		{RunEcosse, Action},
		{AutoSpec, Action},
	}
	for _, class := range types.LandUseClasses {
		specs = append(specs, fieldSpec{LandUseField(class), Check})
	}
	return specs
}
