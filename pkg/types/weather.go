package types

// WeatherSettings remembers the period and scenario chosen for one weather
// resource so they can be restored when the user switches back to it.
type WeatherSettings struct {
	Scenario    string `json:"scenario" yaml:"scenario"`
	HistStartYr string `json:"histStrtYr" yaml:"histStrtYr"`
	HistEndYr   string `json:"histEndYr" yaml:"histEndYr"`
	FutStartYr  string `json:"futStrtYr" yaml:"futStrtYr"`
	FutEndYr    string `json:"futEndYr" yaml:"futEndYr"`
}

// WeatherResource describes the selectable years and scenarios of one
// climate dataset.
type WeatherResource struct {
	Name      string   `yaml:"name" json:"name"`
	HistStart int      `yaml:"histStart" json:"histStart"`
	HistEnd   int      `yaml:"histEnd" json:"histEnd"`
	FutStart  int      `yaml:"futStart" json:"futStart"`
	FutEnd    int      `yaml:"futEnd" json:"futEnd"`
	Scenarios []string `yaml:"scenarios" json:"scenarios"`
}

// CRU is the observational weather resource whose scenario comes from the
// scenario selector rather than from the resource name.
const CRU = "CRU"
