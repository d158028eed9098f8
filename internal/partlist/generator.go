// Package partlist runs one parts-list report: enumerate bodies, aggregate
// their dimensions and render the summary.
package partlist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dbsmedya/partlist/internal/aggregate"
	"github.com/dbsmedya/partlist/internal/config"
	"github.com/dbsmedya/partlist/internal/logger"
	"github.com/dbsmedya/partlist/internal/report"
	"github.com/dbsmedya/partlist/internal/source"
	"github.com/dbsmedya/partlist/internal/units"
)

// Generator wires a body source to a renderer.
type Generator struct {
	source   source.Enumerator
	renderer report.Renderer
	units    config.UnitsConfig
	title    string
	order    aggregate.SortOrder
	logger   *logger.Logger
}

// Summary describes a finished report.
type Summary struct {
	Design        string
	Unit          string
	VisibleBodies int
	HiddenBodies  int
	Dimensions    int // distinct dimension groups
	Footprints    int // distinct footprint groups
	Duration      time.Duration
}

// NewGenerator creates a Generator. The display unit is resolved per run,
// since it may come from the design.
func NewGenerator(src source.Enumerator, renderer report.Renderer, cfg *config.Config, log *logger.Logger) (*Generator, error) {
	if src == nil {
		return nil, fmt.Errorf("body source is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	order, err := aggregate.ParseSortOrder(cfg.Report.Sort)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Generator{
		source:   src,
		renderer: renderer,
		units:    cfg.Units,
		title:    cfg.Report.Title,
		order:    order,
		logger:   log,
	}, nil
}

// NewRenderer returns the renderer for cfg.Format. color only affects text.
func NewRenderer(cfg *config.ReportConfig, color bool) (report.Renderer, error) {
	switch cfg.Format {
	case config.FormatHTML, "":
		return &report.HTMLRenderer{Standalone: cfg.Standalone}, nil
	case config.FormatText:
		return &report.TextRenderer{Color: color}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", cfg.Format)
	}
}

// Generate produces the report and writes it to w. Nothing is written unless
// every stage succeeds.
func (g *Generator) Generate(ctx context.Context, w io.Writer) (*Summary, error) {
	start := time.Now()

	design, err := g.source.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate bodies: %w", err)
	}
	g.logger.Infow("Bodies enumerated", "design", design.Name, "bodies", len(design.Records))

	unit := units.Resolve(g.units.Length, design.DefaultUnits)
	formatter, err := units.NewFormatter(unit, g.units.Precision)
	if err != nil {
		return nil, err
	}

	res, err := aggregate.Aggregate(design.Records, formatter.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bodies: %w", err)
	}
	g.logger.Debugw("Bodies aggregated",
		"visible", res.VisibleCount(),
		"hidden", res.HiddenCount,
		"dimension_groups", len(res.CountsByDimension),
		"footprint_groups", len(res.LengthsByFootprint),
	)

	rpt := report.New(res, formatter.Unit(), g.title, g.order)

	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, rpt); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	summary := &Summary{
		Design:        design.Name,
		Unit:          formatter.Unit(),
		VisibleBodies: res.VisibleCount(),
		HiddenBodies:  res.HiddenCount,
		Dimensions:    len(res.CountsByDimension),
		Footprints:    len(res.LengthsByFootprint),
		Duration:      time.Since(start),
	}
	g.logger.Infow("Report generated",
		"unit", summary.Unit,
		"visible", summary.VisibleBodies,
		"hidden", summary.HiddenBodies,
		"duration", summary.Duration,
	)
	return summary, nil
}
