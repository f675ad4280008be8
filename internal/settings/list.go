package settings

import (
	"path/filepath"
	"strings"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
)

const settingsExt = ".txt"

// SettingsPath returns the settings file for study: prefix + study + ".txt"
// in dir.
func SettingsPath(dir, prefix, study string) string {
	return filepath.Join(dir, prefix+study+settingsExt)
}

// Studies returns the names of the studies that have a settings file in dir,
// sorted.
func Studies(store *storage.Store, dir, prefix string) ([]string, error) {
	files, err := store.List(dir, prefix+"*"+settingsExt)
	if err != nil {
		return nil, err
	}
	studies := make([]string, 0, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), settingsExt)
		studies = append(studies, strings.TrimPrefix(name, prefix))
	}
	return studies, nil
}
