package types

// StudyDefinitionFile is the descriptor read by the simulation runner.
type StudyDefinitionFile struct {
	StudyDefn StudyDefinition `json:"studyDefn"`
}

// StudyDefinition describes one study for the downstream runner.
type StudyDefinition struct {
	BBox          BBox    `json:"bbox"`
	ClimScenario  string  `json:"climScnr"`
	FutEndYr      string  `json:"futEndYr"`
	FutStartYr    string  `json:"futStrtYr"`
	HistEndYr     string  `json:"histEndYr"`
	HistStartYr   string  `json:"histStrtYr"`
	LandUse       string  `json:"land_use"`
	LuPiJSONFname string  `json:"luPiJsonFname"`
	Province      string  `json:"province"`
	Resolution    float64 `json:"resolution"`
	ShapeFile     string  `json:"shpe_file"`
	Study         string  `json:"study"`
	Version       string  `json:"version"`
}

// Placeholder is written for fields the runner does not read yet.
const Placeholder = "xxxx"
