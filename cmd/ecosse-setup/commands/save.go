package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

var (
	saveSets     []string
	saveBBox     string
	saveStudyDef bool
	saveLuPi     string
)

var saveCmd = &cobra.Command{
	Use:   "save <study>",
	Short: "Edit and save the settings of a study",
	Long: `Restore a study's settings, apply the --set edits in order and write the
settings file of the resulting study name. Setting weatherResource reloads
its years and scenarios, so set it before the years.

  ecosse-setup save glasgow --set weatherResource=CRU --set climScenario=rcp45
  ecosse-setup save glasgow --bbox -4.5,55.5,-3.5,56 --study-def --lupi lupi.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringArrayVar(&saveSets, "set", nil, "Set a field, as field=value (repeatable)")
	saveCmd.Flags().StringVar(&saveBBox, "bbox", "", "Bounding box as ll_lon,ll_lat,ur_lon,ur_lat")
	saveCmd.Flags().BoolVar(&saveStudyDef, "study-def", false, "Also write the study definition file")
	saveCmd.Flags().StringVar(&saveLuPi, "lupi", "", "Land-use/plant-input JSON file for the study definition")
}

func runSave(cmd *cobra.Command, args []string) error {
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

	if err := applyEdits(s, saveSets, saveBBox); err != nil {
		return err
	}

	path, err := s.writer.Write(s.form, true)
	if err != nil {
		return err
	}
	if path == "" {
		printWarning(cmd.ErrOrStderr(), "study name is empty - settings not saved")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	if saveStudyDef || saveLuPi != "" {
		return writeStudyDef(cmd, s, saveLuPi)
	}
	return nil
}

// applyEdits applies field=value edits and an optional bounding box.
func applyEdits(s *session, sets []string, bbox string) error {
	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: expected field=value", set)
		}
		name = strings.TrimSpace(name)
		if err := s.form.SetValue(name, value); err != nil {
			return err
		}
		if name == form.WeatherResource {
			s.catalog.ChangeWeatherResource(s.form, value)
		}
		logging.Debug().Str("session", s.form.SessionID).Str("field", name).Str("value", value).Msg("field set")
	}

	if bbox != "" {
		parsed, err := parseBBox(bbox)
		if err != nil {
			return err
		}
		s.setBBox(parsed)
	}
	return nil
}

func parseBBox(text string) (types.BBox, error) {
	var bbox types.BBox
	parts := strings.Split(text, ",")
	if len(parts) != len(bbox) {
		return bbox, fmt.Errorf("invalid --bbox %q: expected 4 comma-separated numbers", text)
	}
	for i, part := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(part))
		if err != nil {
			return types.BBox{}, fmt.Errorf("invalid --bbox %q: %w", text, err)
		}
		bbox[i] = v
	}
	return bbox, nil
}
