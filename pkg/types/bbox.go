package types

import (
	"fmt"

	"github.com/ctessum/geom"
)

// BBox is a lon/lat bounding box: ll-lon, ll-lat, ur-lon, ur-lat.
type BBox [4]float64

// DefaultBBox is used when no bounding box can be restored.
var DefaultBBox = BBox{116.90045, 28.2294, 117.0, 29.0}

// LowerLeft returns the lower-left corner.
func (b BBox) LowerLeft() (lon, lat float64) { return b[0], b[1] }

// UpperRight returns the upper-right corner.
func (b BBox) UpperRight() (lon, lat float64) { return b[2], b[3] }

// Bounds converts the box to a geom.Bounds with X as longitude.
func (b BBox) Bounds() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: b[0], Y: b[1]},
		Max: geom.Point{X: b[2], Y: b[3]},
	}
}

// Polygon returns the box as a counter-clockwise ring.
func (b BBox) Polygon() geom.Polygon {
	return geom.Polygon{{
		{X: b[0], Y: b[1]},
		{X: b[2], Y: b[1]},
		{X: b[2], Y: b[3]},
		{X: b[0], Y: b[3]},
	}}
}

func (b BBox) String() string {
	return fmt.Sprintf("LL: %.4f, %.4f  UR: %.4f, %.4f", b[0], b[1], b[2], b[3])
}
