package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/partlist/internal/database"
	"github.com/dbsmedya/partlist/internal/logger"
	"github.com/dbsmedya/partlist/internal/source"
	"github.com/dbsmedya/partlist/internal/units"
)

var validateCmd = &cobra.Command{
	Use:   "validate [assembly-file]",
	Short: "Validate configuration and body source",
	Long: `Validate checks the configuration and reads the body source without
writing a report.

Checks performed:
  - Configuration syntax and required fields
  - Body source connectivity and document structure
  - Display unit resolution
  - Bounding box of every visible body

Example:
  partlist validate --config partlist.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	pass := func(format string, a ...interface{}) {
		cmd.Println(color.Green.Sprintf("✅ "+format, a...))
	}
	fail := func(format string, a ...interface{}) {
		cmd.Println(color.Red.Sprintf("❌ "+format, a...))
	}

	cmd.Printf("\n=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", GetConfigFile())

	cfg, err := loadCommandConfig(args)
	if err != nil {
		fail("%v", err)
		return err
	}
	pass("Configuration is valid")

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := database.SetupSignalHandler(nil)
	defer stop()

	src, closeSource, err := source.Open(ctx, &cfg.Source, log)
	if err != nil {
		fail("Body source unavailable: %v", err)
		return fmt.Errorf("failed to open body source: %w", err)
	}
	defer closeSource()

	design, err := src.Enumerate(ctx)
	if err != nil {
		fail("Enumeration failed: %v", err)
		return fmt.Errorf("failed to enumerate bodies: %w", err)
	}
	pass("Design %q: %d bodies enumerated", design.Name, len(design.Records))

	hasErrors := false

	unit := units.Resolve(cfg.Units.Length, design.DefaultUnits)
	if _, err := units.NewFormatter(unit, cfg.Units.Precision); err != nil {
		fail("%v", err)
		hasErrors = true
	} else {
		pass("Display unit: %s", unit)
	}

	malformed := 0
	for _, r := range design.Records {
		if !r.Visible {
			continue
		}
		if err := r.Validate(); err != nil {
			log.WithComponent(r.ComponentName).Warnw("Malformed body", "body", r.BodyName, "error", err)
			fail("%v", err)
			malformed++
		}
	}
	if malformed > 0 {
		hasErrors = true
	} else {
		pass("All visible bodies have valid bounding boxes")
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	cmd.Println("=== Validation Complete ===")
	return nil
}
