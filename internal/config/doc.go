// Package config provides program configuration loading and path management
// for ecosse-setup.
//
// Program configuration is distinct from study settings: it says where
// settings and simulation files live, which prefix names the settings files,
// which settings keys are required and what the runner needs to be able to
// start. It is loaded once at startup and passed to the settings and study
// definition packages.
//
// # Configuration Loading
//
// Load merges configuration from these sources, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. Global config (~/.config/ecosse-setup/ecosse-setup.yaml, XDG compatible)
//  3. Project config (ecosse-setup.yaml in the given directory)
//  4. ECOSSE_SETUP_CONFIG file
//  5. .env file in the given directory (never overrides the real environment)
//  6. Environment variables
//
// YAML files only override the fields they set.
//
// # Environment Variable Overrides
//
//   - ECOSSE_CONFIG_DIR - directory holding study settings files
//   - ECOSSE_SIMS_DIR - directory receiving study definition files
//   - ECOSSE_PREFIX - settings file name prefix
//   - ECOSSE_VERSION - version written to study definitions
//   - ECOSSE_PYTHON_EXE, ECOSSE_RUNSITES_PY, ECOSSE_RUNSITES_CONFIG - runner
//     prerequisites
//
// # Path Management
//
// Paths follows the XDG Base Directory Specification:
//   - Config: ~/.config/ecosse-setup (XDG_CONFIG_HOME)
//   - Data: ~/.local/share/ecosse-setup (XDG_DATA_HOME)
//   - State: ~/.local/state/ecosse-setup (XDG_STATE_HOME)
//
// On Windows, these paths are adapted to use APPDATA.
package config
