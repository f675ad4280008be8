package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/settings"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/studydef"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the studies with a settings file",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(storage.NewOs())
	if err != nil {
		return err
	}

	studies, err := settings.Studies(s.store, s.cfg.ConfigDir, s.cfg.Prefix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingColor.Sprintf("studies › %s", s.cfg.ConfigDir))
	if len(studies) == 0 {
		fmt.Fprintln(out, disabledColor.Sprint("  (none)"))
		return nil
	}
	for _, study := range studies {
		marker := ""
		if s.store.Exists(studydef.Path(s.cfg.SimsDir, study)) {
			marker = disabledColor.Sprint(" (study definition)")
		}
		name := study
		if name == "" {
			name = `""`
		}
		fmt.Fprintf(out, "  %s%s\n", nameColor.Sprint(name), marker)
	}
	return nil
}
