package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/partlist/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	lengthUnit string
	precision  int
	format     string
	output     string
	sortOrder  string
	standalone bool
)

var rootCmd = &cobra.Command{
	Use:   "partlist",
	Short: "Parts list generator for CAD assemblies",
	Long: `Partlist enumerates the solid bodies of a CAD design and summarizes
them as a parts list.

Features:
  - Per-body bounding box dimensions, smallest to largest
  - Counts of identical parts by dimensions
  - Total lengths of stock grouped by cross-section
  - Hidden bodies excluded and reported
  - HTML or terminal output in mm, cm, m, in or ft`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "partlist.yaml",
		"Path to configuration file (defaults apply if it does not exist)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Unit overrides
	rootCmd.PersistentFlags().StringVarP(&lengthUnit, "units", "u", "",
		"Override display length unit (mm, cm, m, in, ft)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1,
		"Override number of decimals for dimensions")

	// Report overrides
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "",
		"Override report format (html, text)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "",
		"Override report output (stdout or file path)")
	rootCmd.PersistentFlags().StringVar(&sortOrder, "sort", "",
		"Override summary ordering (lexical, numeric)")
	rootCmd.PersistentFlags().BoolVar(&standalone, "standalone", false,
		"Wrap HTML output in a complete document")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() config.CLIOverrides {
	return config.CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Units:      lengthUnit,
		Precision:  precision,
		Format:     format,
		Output:     output,
		Sort:       sortOrder,
		Standalone: standalone,
	}
}
