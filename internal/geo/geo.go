// Package geo provides the bounding-box area and grid resolution arithmetic
// used when restoring and describing a study.
package geo

import (
	"math"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0088

// lonLatExtent is the valid range of longitudes and latitudes.
var lonLatExtent = types.BBox{-180, -90, 180, 90}

// Area returns the area of bbox in square kilometres on a spherical Earth.
// The box is first clipped to the valid lon/lat extent. Degenerate or
// inverted boxes, and boxes wholly outside the extent, have zero area.
func Area(bbox types.BBox) float64 {
	b := bbox.Bounds()
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
		return 0
	}
	if !lonLatExtent.Bounds().Overlaps(b) {
		return 0
	}
	clipped := bbox.Polygon().Intersection(lonLatExtent.Polygon())
	if clipped.Area() <= 0 {
		return 0
	}

	c := clipped.Bounds()
	dLon := (c.Max.X - c.Min.X) * math.Pi / 180
	lat1 := c.Min.Y * math.Pi / 180
	lat2 := c.Max.Y * math.Pi / 180
	return EarthRadiusKm * EarthRadiusKm * dLon * (math.Sin(lat2) - math.Sin(lat1))
}

// Resolution is one entry of the grid resolution selector.
type Resolution struct {
	Label string
	// Granularity is the cell size in multiples of 30 arc-seconds, the
	// resolution of the soil database.
	Granularity int
}

// Degrees returns the cell size in decimal degrees.
func (r Resolution) Degrees() float64 {
	return float64(r.Granularity) * 30 / 3600
}

// Resolutions is the fixed list indexed by the gridResol setting.
var Resolutions = []Resolution{
	{`30"`, 1},
	{`1'`, 2},
	{`2'`, 4},
	{`3'`, 6},
	{`5'`, 10},
	{`10'`, 20},
	{`15'`, 30},
	{`30'`, 60},
	{"1 deg", 120},
}

// ResolutionLabels returns the selector items for Resolutions.
func ResolutionLabels() []string {
	labels := make([]string, len(Resolutions))
	for i, r := range Resolutions {
		labels[i] = r.Label
	}
	return labels
}

// GridCell resolves the selected grid resolution to decimal degrees and
// records the requested resolution on f. An out-of-range selection falls
// back to the finest resolution.
func GridCell(f *form.Form) float64 {
	i := f.Index(form.GridResol)
	if i < 0 || i >= len(Resolutions) {
		i = 0
	}
	r := Resolutions[i]
	deg := r.Degrees()
	granul := r.Granularity
	f.ReqResolDeg = &deg
	f.ReqResolGranul = &granul
	return deg
}
