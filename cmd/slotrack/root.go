// Root command for the slotrack CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ayurlms/slotrack/internal/paths"
	"github.com/ayurlms/slotrack/pkg/types"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configDataDir      string
	configAcademicYear string
)

var rootCmd = &cobra.Command{
	Use:     "slotrack",
	Short:   "Slotrack tracks syllabus coverage for teachers",
	Version: types.Version,
	Long: `Slotrack imports a structured curriculum workbook into a local SQLite
store, lets a teacher browse learning objectives, plan and log what was
taught, and report coverage per subject, priority tier, and month.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configAcademicYear = cfg.GetString(cfgKeyAcademicYear)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(teacherCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(objectivesCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(abbreviationsCmd)
}

// resolveDataDir returns the data directory path with precedence:
// --data-dir flag > config.yaml data_dir > SLOTRACK_DATA_DIR env >
// platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory with precedence:
// --config-dir flag > SLOTRACK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
