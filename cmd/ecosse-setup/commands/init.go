package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/settings"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
)

var initFile string

var initCmd = &cobra.Command{
	Use:   "init [study]",
	Short: "Create a default settings file",
	Long: `Create the default settings file for a study, or for the file given with
--file. An existing file is left unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initFile, "file", "", "Settings file to create instead of the study's")
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := newSession(storage.NewOs())
	if err != nil {
		return err
	}

	path := initFile
	if path == "" {
		study := ""
		if len(args) > 0 {
			study = args[0]
		}
		path = s.settingsPath(study)
	}

	if s.store.Exists(path) {
		printWarning(cmd.ErrOrStderr(), "%s already exists", path)
		return nil
	}
	if _, err := settings.WriteDefault(s.store, path, s.cfg.Rules.DefaultBBox); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
