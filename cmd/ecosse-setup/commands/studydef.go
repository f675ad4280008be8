package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

var studyDefLuPi string

var studyDefCmd = &cobra.Command{
	Use:   "studydef <study>",
	Short: "Write the study definition file of a study",
	Long: `Restore a study's settings and write the study definition file read by the
simulation runner. The land-use sequence comes from the land-use/plant-input
file given with --lupi.`,
	Args: cobra.ExactArgs(1),
	RunE: runStudyDef,
}

func init() {
	studyDefCmd.Flags().StringVar(&studyDefLuPi, "lupi", "", "Land-use/plant-input JSON file")
	studyDefCmd.MarkFlagRequired("lupi")
}

func runStudyDef(cmd *cobra.Command, args []string) error {
	s, err := newSession(storage.NewOs())
	if err != nil {
		return err
	}

	if _, err := s.load(args[0]); err != nil {
		if !incomplete(err) {
			return err
		}
		printWarning(cmd.ErrOrStderr(), "%v", err)
	}
	return writeStudyDef(cmd, s, studyDefLuPi)
}

func writeStudyDef(cmd *cobra.Command, s *session, luPiPath string) error {
	if luPiPath != "" {
		if err := s.loadLandUsePI(luPiPath); err != nil {
			return err
		}
	}
	if !s.form.LuPi.Has(types.LandUsePIMarker) {
		printWarning(cmd.ErrOrStderr(), "no %s in land-use/plant-input file - study definition not written", types.LandUsePIMarker)
		return nil
	}

	path, err := s.studyDefs.Write(s.form)
	if err != nil {
		return err
	}
	if path == "" {
		printWarning(cmd.ErrOrStderr(), "study name is empty - study definition not written")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
