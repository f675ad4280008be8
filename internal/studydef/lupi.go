package studydef

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// ErrInvalidLandUsePI reports a land-use/plant-input file that cannot be parsed.
var ErrInvalidLandUsePI = errors.New("invalid land-use/plant-input file")

// LoadLandUsePI reads a land-use/plant-input file. Steps keep the order in
// which they appear in the file; each step is a [landUse, plantInput] pair.
func LoadLandUsePI(store *storage.Store, path string) (*types.LandUsePIContent, error) {
	data, err := store.Read(path)
	if err != nil {
		return nil, err
	}
	return ParseLandUsePI(data)
}

// ParseLandUsePI parses the content of a land-use/plant-input file.
func ParseLandUsePI(data []byte) (*types.LandUsePIContent, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidLandUsePI)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalidLandUsePI)
	}

	content := &types.LandUsePIContent{}
	root.ForEach(func(key, _ gjson.Result) bool {
		content.Keys = append(content.Keys, key.String())
		return true
	})

	var stepErr error
	root.Get(types.LandUsePIMarker).ForEach(func(key, value gjson.Result) bool {
		pair := value.Array()
		if len(pair) < 2 {
			stepErr = fmt.Errorf("%w: step %s is not a [landUse, plantInput] pair", ErrInvalidLandUsePI, key.String())
			return false
		}
		content.Steps = append(content.Steps, types.LandUsePIStep{
			Index:      key.String(),
			LandUse:    pair[0].String(),
			PlantInput: pair[1].Float(),
		})
		return true
	})
	if stepErr != nil {
		return nil, stepErr
	}
	return content, nil
}
