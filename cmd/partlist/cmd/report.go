package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/partlist/internal/config"
	"github.com/dbsmedya/partlist/internal/database"
	"github.com/dbsmedya/partlist/internal/logger"
	"github.com/dbsmedya/partlist/internal/partlist"
	"github.com/dbsmedya/partlist/internal/source"
)

var reportCmd = &cobra.Command{
	Use:   "report [assembly-file]",
	Short: "Generate the parts list report",
	Long: `Report enumerates every body of the configured design and writes the
parts list: one row per visible body, counts of identical dimensions and
total lengths per cross-section. Hidden bodies are counted in a closing note.

An assembly file given as argument replaces the configured source.

Example:
  partlist report cabinet.yaml --units mm --precision 0
  partlist report --config partlist.yaml --format text`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadCommandConfig(args)
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	log.WithFields(map[string]interface{}{
		"config": GetConfigFile(),
		"source": cfg.Source.Type,
		"format": cfg.Report.Format,
		"output": cfg.Report.Output,
	}).Info("Starting report")

	ctx, stop := database.SetupSignalHandler(func(sig os.Signal) {
		log.Warnw("Received shutdown signal - aborting report", "signal", sig.String())
	})
	defer stop()

	toStdout := cfg.Report.Output == "stdout"
	renderer, err := partlist.NewRenderer(&cfg.Report, toStdout && color.SupportColor())
	if err != nil {
		return err
	}

	src, closeSource, err := source.Open(ctx, &cfg.Source, log)
	if err != nil {
		return fmt.Errorf("failed to open body source: %w", err)
	}
	defer closeSource()

	gen, err := partlist.NewGenerator(src, renderer, cfg, log)
	if err != nil {
		return err
	}

	if toStdout {
		_, err = generate(ctx, gen, cmd.OutOrStdout())
		return err
	}

	f, err := os.Create(cfg.Report.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	summary, err := generate(ctx, gen, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close output file: %w", cerr)
	}
	if err != nil {
		return err
	}

	cmd.Printf("Report written to %s (%d bodies, %d hidden)\n",
		cfg.Report.Output, summary.VisibleBodies, summary.HiddenBodies)
	return nil
}

func generate(ctx context.Context, gen *partlist.Generator, w io.Writer) (*partlist.Summary, error) {
	summary, err := gen.Generate(ctx, w)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("report cancelled")
		}
		return nil, err
	}
	return summary, nil
}

// loadCommandConfig loads the config and lets a positional assembly file
// replace the configured source.
func loadCommandConfig(args []string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(GetCLIOverrides())
	if len(args) > 0 {
		cfg.Source.Type = config.SourceFile
		cfg.Source.Path = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
