package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// DefaultPrefix is prepended to the study name to form settings file names.
const DefaultPrefix = "global_ecosse_config_hwsd_"

// DefaultPlantFuncType replaces a missing plntFncTyp setting.
const DefaultPlantFuncType = "SoilBareGlobal"

// Config is the program configuration.
type Config struct {
	// ConfigDir holds the study settings files.
	ConfigDir string `yaml:"configDir"`
	// SimsDir receives the study definition files.
	SimsDir string `yaml:"simsDir"`
	// Prefix is prepended to the study name to form the settings file name.
	Prefix  string `yaml:"prefix"`
	Version string `yaml:"version"`

	// Runner prerequisites. The run and auto-spec actions are disabled
	// unless all three are set.
	PythonExe      string `yaml:"pythonExe"`
	RunsitesPy     string `yaml:"runsitesPy"`
	RunsitesConfig string `yaml:"runsitesConfig"`

	// PlantFuncTypes populate the plant functional type selector. When empty
	// the selector accepts any name.
	PlantFuncTypes   []string                `yaml:"plantFuncTypes"`
	WeatherResources []types.WeatherResource `yaml:"weatherResources"`
	LandUseAbbrevs   map[string]string       `yaml:"landUseAbbrevs"`

	Rules Rules `yaml:"rules"`
}

// Rules drive settings reconciliation.
type Rules struct {
	RequiredMin    []string   `yaml:"requiredMin"`
	RequiredCommon []string   `yaml:"requiredCommon"`
	DefaultBBox    types.BBox `yaml:"defaultBBox"`
	DefaultPFT     string     `yaml:"defaultPlantFuncType"`
}

// DefaultRules returns the required keys and fallbacks of the settings file.
func DefaultRules() Rules {
	return Rules{
		RequiredMin: []string{
			types.KeyWeatherResource,
			types.KeyAveWeather,
			types.KeyBBox,
			types.KeyPlantFuncType,
			types.KeyLitterNcFname,
		},
		RequiredCommon: []string{
			types.KeyStudy,
			types.KeyHistStartYr,
			types.KeyHistEndYr,
			types.KeyClimScenario,
			types.KeyFutStartYr,
			types.KeyFutEndYr,
			types.KeyGridResol,
			types.KeyEquilMode,
		},
		DefaultBBox: types.DefaultBBox,
		DefaultPFT:  DefaultPlantFuncType,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	paths := GetPaths()
	return &Config{
		ConfigDir: paths.SettingsDir(),
		SimsDir:   paths.SimulationsDir(),
		Prefix:    DefaultPrefix,
		Version:   "2.0",
		WeatherResources: []types.WeatherResource{
			{
				Name: types.CRU, HistStart: 1901, HistEnd: 2019, FutStart: 2006, FutEnd: 2100,
				Scenarios: []string{"rcp26", "rcp45", "rcp60", "rcp85"},
			},
			{Name: "EObs", HistStart: 1950, HistEnd: 2022, FutStart: 2006, FutEnd: 2022},
			{Name: "HARMONIE", HistStart: 1980, HistEnd: 2019, FutStart: 2006, FutEnd: 2019},
		},
		LandUseAbbrevs: map[string]string{
			"cropland":  "ara",
			"pasture":   "gra",
			"grassland": "gra",
			"forest":    "for",
			"other":     "nat",
		},
		Rules: DefaultRules(),
	}
}

// Load loads configuration from multiple sources (priority order):
// 1. Built-in defaults
// 2. Global config (~/.config/ecosse-setup/ecosse-setup.yaml)
// 3. Project config (ecosse-setup.yaml in directory)
// 4. ECOSSE_SETUP_CONFIG file
// 5. .env file in directory
// 6. Environment variables
func Load(directory string) (*Config, error) {
	config := Default()

	// Track loaded files to avoid duplicates
	loaded := make(map[string]bool)

	loadOnce := func(path string) error {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil
		}
		if loaded[absPath] {
			return nil
		}
		err = loadConfigFile(path, config)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		loaded[absPath] = true
		return nil
	}

	// 2. Global config
	if err := loadOnce(GlobalConfigPath()); err != nil {
		return nil, err
	}

	// 3. Project config
	if directory != "" {
		if err := loadOnce(ProjectConfigPath(directory)); err != nil {
			return nil, err
		}
	}

	// 4. ECOSSE_SETUP_CONFIG file override
	if configPath := os.Getenv("ECOSSE_SETUP_CONFIG"); configPath != "" {
		if err := loadOnce(configPath); err != nil {
			return nil, err
		}
	}

	// 5. .env does not override variables already set
	if directory != "" {
		if err := godotenv.Load(filepath.Join(directory, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// 6. Environment variables (highest priority)
	applyEnvOverrides(config)

	return config, nil
}

// loadConfigFile decodes a YAML file over config.
func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(config *Config) {
	overrides := map[string]*string{
		"ECOSSE_CONFIG_DIR":      &config.ConfigDir,
		"ECOSSE_SIMS_DIR":        &config.SimsDir,
		"ECOSSE_PREFIX":          &config.Prefix,
		"ECOSSE_VERSION":         &config.Version,
		"ECOSSE_PYTHON_EXE":      &config.PythonExe,
		"ECOSSE_RUNSITES_PY":     &config.RunsitesPy,
		"ECOSSE_RUNSITES_CONFIG": &config.RunsitesConfig,
	}
	for envVar, field := range overrides {
		if value := os.Getenv(envVar); value != "" {
			*field = value
		}
	}
}
