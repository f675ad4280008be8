package commands

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
)

var showQuery string

var showCmd = &cobra.Command{
	Use:   "show <study>",
	Short: "Show the settings of a study",
	Long: `Restore a study's settings into a form and print the form. A default
settings file is created when the study has none.

With --jq the raw settings file is queried instead, e.g.
  ecosse-setup show glasgow --jq '.minGUI.bbox'`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showQuery, "jq", "", "jq filter applied to the settings file")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := newSession(storage.NewOs())
	if err != nil {
		return err
	}

	if showQuery != "" {
		return runQuery(cmd, s, s.settingsPath(args[0]), showQuery)
	}

	path, err := s.load(args[0])
	if err != nil && !incomplete(err) {
		return err
	}
	printForm(cmd.OutOrStdout(), s.form, path)
	if err != nil {
		printError(cmd.ErrOrStderr(), err)
		return fmt.Errorf("settings of %s are incomplete", args[0])
	}
	return nil
}

func runQuery(cmd *cobra.Command, s *session, path, filter string) error {
	var doc map[string]any
	if err := s.store.Get(path, &doc); err != nil {
		return err
	}

	query, err := gojq.Parse(filter)
	if err != nil {
		return fmt.Errorf("jq: filter parse error: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("jq: compile error: %w", err)
	}

	iter := code.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("jq: execution error: %w", err)
		}
		output, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("jq: marshal error: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
	}
	return nil
}
