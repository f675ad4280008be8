package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/config"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Debug utilities",
	Long:  `Debug utilities for troubleshooting ecosse-setup configuration and setup.`,
}

var debugConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runDebugConfig,
}

var debugPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show system paths",
	RunE:  runDebugPaths,
}

func init() {
	debugCmd.AddCommand(debugConfigCmd)
	debugCmd.AddCommand(debugPathsCmd)
}

func runDebugConfig(cmd *cobra.Command, args []string) error {
	workDir, err := GetWorkDir(configDir)
	if err != nil {
		return err
	}

	appConfig, err := config.Load(workDir)
	if err != nil {
		return err
	}

	// Output as YAML, the format of the config files
	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runDebugPaths(cmd *cobra.Command, args []string) error {
	workDir, err := GetWorkDir(configDir)
	if err != nil {
		return err
	}
	paths := config.GetPaths()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "ecosse-setup System Paths:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Config:    %s\n", paths.Config)
	fmt.Fprintf(out, "  Data:      %s\n", paths.Data)
	fmt.Fprintf(out, "  State:     %s\n", paths.State)
	fmt.Fprintf(out, "  Settings:  %s\n", paths.SettingsDir())
	fmt.Fprintf(out, "  Sims:      %s\n", paths.SimulationsDir())
	fmt.Fprintf(out, "  Logs:      %s\n", paths.LogDir())
	if logFile := logging.GetLogFilePath(); logFile != "" {
		fmt.Fprintf(out, "  Log file:  %s\n", logFile)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Config Files:")
	fmt.Fprintf(out, "  Global:    %s\n", config.GlobalConfigPath())
	fmt.Fprintf(out, "  Project:   %s\n", config.ProjectConfigPath(workDir))

	return nil
}
