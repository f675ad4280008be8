package types

// LandUsePIMarker is the top-level key of a land-use/plant-input file.
const LandUsePIMarker = "LandusePI"

// LandUsePIStep is one land-use period with its plant input.
type LandUsePIStep struct {
	Index      string  `json:"index"`
	LandUse    string  `json:"landUse"`
	PlantInput float64 `json:"plantInput"`
}

// LandUsePIContent is a parsed land-use/plant-input file.
type LandUsePIContent struct {
	// Keys are the top-level keys in file order.
	Keys []string
	// Steps are the LandusePI entries in file order.
	Steps []LandUsePIStep
}

// Has reports whether key is a top-level key of the file.
func (c *LandUsePIContent) Has(key string) bool {
	if c == nil {
		return false
	}
	for _, k := range c.Keys {
		if k == key {
			return true
		}
	}
	return false
}
