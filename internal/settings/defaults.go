package settings

import (
	"fmt"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// DefaultDocument returns the settings written when no settings file exists.
// Values use the shapes JSON decoding produces (float64 numbers, []any
// arrays) so the result compares equal to the file read back.
//
// The document has no weatherResource, so reading it back fails
// reconciliation until the user saves a complete set of settings.
func DefaultDocument(bbox types.BBox) types.RawDocument {
	return types.RawDocument{
		types.GroupMin: {
			types.KeyAveWeather:    false,
			types.KeyBBox:          []any{bbox[0], bbox[1], bbox[2], bbox[3]},
			types.KeyCordex:        float64(0),
			types.KeyLuPiJSONFname: "",
			types.KeySinglePoint:   true,
			types.KeyUsePolygon:    false,
		},
		types.GroupCommon: {
			types.KeyClimScenario: "rcp26",
			types.KeyEquilMode:    "9.5",
			types.KeyFutStartYr:   "2006",
			types.KeyFutEndYr:     "2015",
			types.KeyGridResol:    float64(0),
			types.KeyHistStartYr:  "1980",
			types.KeyHistEndYr:    "2005",
			types.KeyStudy:        "",
		},
	}
}

// WriteDefault persists DefaultDocument at path and returns it.
func WriteDefault(store *storage.Store, path string, bbox types.BBox) (types.RawDocument, error) {
	doc := DefaultDocument(bbox)
	if _, err := store.Put(path, doc); err != nil {
		return nil, fmt.Errorf("write default settings: %w", err)
	}
	logging.Info().Str("file", path).Msg("wrote default configuration file")
	return doc, nil
}
