package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "ecosse-setup"

// Paths contains the standard per-user paths.
type Paths struct {
	Data   string // ~/.local/share/ecosse-setup
	Config string // ~/.config/ecosse-setup
	State  string // ~/.local/state/ecosse-setup
}

// GetPaths returns the standard per-user paths.
func GetPaths() *Paths {
	return &Paths{
		Data:   filepath.Join(getEnvOrDefault("XDG_DATA_HOME", defaultDataHome()), AppName),
		Config: filepath.Join(getEnvOrDefault("XDG_CONFIG_HOME", defaultConfigHome()), AppName),
		State:  filepath.Join(getEnvOrDefault("XDG_STATE_HOME", defaultStateHome()), AppName),
	}
}

// EnsurePaths creates all required directories.
func (p *Paths) EnsurePaths() error {
	for _, dir := range []string{p.Data, p.Config, p.State} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// SettingsDir is the default directory for study settings files.
func (p *Paths) SettingsDir() string {
	return filepath.Join(p.Config, "config")
}

// SimulationsDir is the default directory for study definition files.
func (p *Paths) SimulationsDir() string {
	return filepath.Join(p.Data, "simulations")
}

// LogDir is the directory for log files.
func (p *Paths) LogDir() string {
	return filepath.Join(p.State, "logs")
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultDataHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("APPDATA")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}

func defaultConfigHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("APPDATA")
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

func defaultStateHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("APPDATA")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state")
}

// GlobalConfigPath returns the path to the global program config file.
func GlobalConfigPath() string {
	return filepath.Join(GetPaths().Config, AppName+".yaml")
}

// ProjectConfigPath returns the path to the program config file in directory.
func ProjectConfigPath(directory string) string {
	return filepath.Join(directory, AppName+".yaml")
}
