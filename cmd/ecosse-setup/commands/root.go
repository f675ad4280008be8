// Package commands provides the CLI commands for ecosse-setup.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/config"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	printLogs bool
	logLevel  string
	configDir string
	maskFname string
)

var rootCmd = &cobra.Command{
	Use:   "ecosse-setup",
	Short: "ecosse-setup - study settings for ECOSSE land-use simulations",
	Long: `ecosse-setup keeps the per-study settings of ECOSSE land-use and climate
simulations and writes the study definition files read by the simulation
runner.

Run 'ecosse-setup show <study>' to inspect a study, or 'ecosse-setup save
<study> --set field=value' to change it.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVar(&printLogs, "print-logs", false, "Print logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding ecosse-setup.yaml and .env (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&maskFname, "mask", "", "Land-use mask file; land-use flags are only restored when set")

	rootCmd.SetVersionTemplate(fmt.Sprintf("ecosse-setup %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(studyDefCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(debugCmd)
}

// setupLogging creates the per-user directories, then sends logs to stderr
// with --print-logs and to a log file in the state directory otherwise.
func setupLogging(cmd *cobra.Command, args []string) error {
	paths := config.GetPaths()
	if err := paths.EnsurePaths(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(logLevel)
	if printLogs {
		cfg.Pretty = true
	} else {
		cfg.Output = io.Discard
		cfg.LogToFile = true
		cfg.LogDir = paths.LogDir()
	}
	logging.Init(cfg)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetWorkDir returns the working directory from flag or current directory.
func GetWorkDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}
