// Package weather keeps the catalog of weather resources and reacts to the
// weather resource selection on a form.
package weather

import (
	"strconv"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// Catalog holds the known weather resources in display order.
type Catalog struct {
	resources []types.WeatherResource
}

// NewCatalog creates a catalog from resources.
func NewCatalog(resources []types.WeatherResource) *Catalog {
	return &Catalog{resources: resources}
}

// Names returns the resource names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.resources))
	for i, r := range c.resources {
		names[i] = r.Name
	}
	return names
}

// Lookup returns the named resource.
func (c *Catalog) Lookup(name string) (types.WeatherResource, bool) {
	for _, r := range c.resources {
		if r.Name == name {
			return r, true
		}
	}
	return types.WeatherResource{}, false
}

// ChangeWeatherResource repopulates the year and scenario selectors of f for
// resource and restores the choices last recorded for it. Only the CRU
// resource offers scenarios; any other resource is its own scenario.
func (c *Catalog) ChangeWeatherResource(f *form.Form, resource string) {
	r, ok := c.Lookup(resource)
	if !ok {
		logging.Warn().Str("session", f.SessionID).Str("weatherResource", resource).Msg("unknown weather resource")
		return
	}

	hist := years(r.HistStart, r.HistEnd)
	fut := years(r.FutStart, r.FutEnd)
	scenarios := r.Scenarios
	if len(scenarios) == 0 {
		scenarios = []string{r.Name}
	}
	f.SetItems(form.HistStartYr, hist)
	f.SetItems(form.HistEndYr, hist)
	f.SetItems(form.FutStartYr, fut)
	f.SetItems(form.FutEndYr, fut)
	f.SetItems(form.ClimScenario, scenarios)

	prev, ok := f.WeatherSettings[resource]
	if !ok {
		return
	}
	for name, value := range map[string]string{
		form.ClimScenario: prev.Scenario,
		form.HistStartYr:  prev.HistStartYr,
		form.HistEndYr:    prev.HistEndYr,
		form.FutStartYr:   prev.FutStartYr,
		form.FutEndYr:     prev.FutEndYr,
	} {
		if err := f.SetText(name, value); err != nil {
			logging.Debug().Err(err).Str("weatherResource", resource).Msg("recorded weather setting not restored")
		}
	}
}

// Record packs the period and scenario choices of one weather resource.
func Record(scenario, histStart, histEnd, futStart, futEnd string) types.WeatherSettings {
	return types.WeatherSettings{
		Scenario:    scenario,
		HistStartYr: histStart,
		HistEndYr:   histEnd,
		FutStartYr:  futStart,
		FutEndYr:    futEnd,
	}
}

func years(start, end int) []string {
	if end < start {
		return nil
	}
	out := make([]string, 0, end-start+1)
	for y := start; y <= end; y++ {
		out = append(out, strconv.Itoa(y))
	}
	return out
}
