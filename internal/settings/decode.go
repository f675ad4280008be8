package settings

import (
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// section wraps one loaded group for typed access. The first conversion
// failure is kept and later reads return zero values.
type section struct {
	group  string
	file   string
	values map[string]any
	err    error
}

func (s *section) fail(key string, err error) {
	if s.err == nil {
		s.err = &InvalidValueError{Group: s.group, Key: key, File: s.file, Err: err}
	}
}

func (s *section) has(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *section) text(key string) string {
	v, err := cast.ToStringE(s.values[key])
	if err != nil {
		s.fail(key, err)
	}
	return v
}

func (s *section) flag(key string) bool {
	v, err := cast.ToBoolE(s.values[key])
	if err != nil {
		s.fail(key, err)
	}
	return v
}

// number reads a whole number. Fractions are rejected rather than
// truncated.
func (s *section) number(key string) int {
	v, err := cast.ToFloat64E(s.values[key])
	if err != nil {
		s.fail(key, err)
		return 0
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		s.fail(key, fmt.Errorf("expected a whole number, got %v", v))
		return 0
	}
	return int(v)
}

func (s *section) bbox(key string) types.BBox {
	var box types.BBox
	raw, ok := s.values[key]
	if !ok {
		return box
	}
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []float64:
		for _, x := range v {
			items = append(items, x)
		}
	case types.BBox:
		return v
	default:
		s.fail(key, fmt.Errorf("expected a list of 4 numbers, got %T", raw))
		return box
	}
	if len(items) != len(box) {
		s.fail(key, fmt.Errorf("expected 4 numbers, got %d", len(items)))
		return box
	}
	for i, item := range items {
		x, err := cast.ToFloat64E(item)
		if err != nil {
			s.fail(key, err)
			return types.BBox{}
		}
		box[i] = x
	}
	return box
}

func decodeMin(s *section) (types.MinSettings, error) {
	ms := types.MinSettings{
		WeatherResource: s.text(types.KeyWeatherResource),
		AveWeather:      s.flag(types.KeyAveWeather),
		BBox:            s.bbox(types.KeyBBox),
		PlantFuncType:   s.text(types.KeyPlantFuncType),
		LitterNcFname:   s.text(types.KeyLitterNcFname),
	}
	return ms, s.err
}

func decodeCommon(s *section) (types.CommonSettings, error) {
	cs := types.CommonSettings{
		Study:        s.text(types.KeyStudy),
		HistStartYr:  s.text(types.KeyHistStartYr),
		HistEndYr:    s.text(types.KeyHistEndYr),
		ClimScenario: s.text(types.KeyClimScenario),
		FutStartYr:   s.text(types.KeyFutStartYr),
		FutEndYr:     s.text(types.KeyFutEndYr),
		GridResol:    s.number(types.KeyGridResol),
		EquilMode:    s.text(types.KeyEquilMode),
	}
	return cs, s.err
}
