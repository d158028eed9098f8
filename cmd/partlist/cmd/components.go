package cmd

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/partlist/internal/body"
	"github.com/dbsmedya/partlist/internal/database"
	"github.com/dbsmedya/partlist/internal/logger"
	"github.com/dbsmedya/partlist/internal/source"
)

var componentsCmd = &cobra.Command{
	Use:   "components [assembly-file]",
	Short: "List the components of the design",
	Long: `Components lists every component reached while enumerating the design,
in traversal order, with the number of visible and hidden bodies it
contributes. A component placed by several occurrences is counted once per
occurrence.

Example:
  partlist components cabinet.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComponents,
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}

type componentTally struct {
	visible int
	hidden  int
}

func runComponents(cmd *cobra.Command, args []string) error {
	cfg, err := loadCommandConfig(args)
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := database.SetupSignalHandler(nil)
	defer stop()

	src, closeSource, err := source.Open(ctx, &cfg.Source, log)
	if err != nil {
		return fmt.Errorf("failed to open body source: %w", err)
	}
	defer closeSource()

	design, err := src.Enumerate(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate bodies: %w", err)
	}

	tallies := tallyComponents(design.Records)
	if tallies.Len() == 0 {
		cmd.Printf("No bodies found in design %q\n", design.Name)
		return nil
	}

	cmd.Printf("Components in design %q:\n\n", design.Name)

	i := 0
	for el := tallies.Front(); el != nil; el = el.Next() {
		i++
		cmd.Printf("%d. %s\n", i, el.Key)
		cmd.Printf("   Visible bodies: %d\n", el.Value.visible)
		if el.Value.hidden > 0 {
			cmd.Printf("   Hidden bodies:  %d\n", el.Value.hidden)
		}
	}

	visible, hidden := body.CountVisible(design.Records)
	cmd.Printf("\nTotal: %d component(s), %d visible and %d hidden bodies\n",
		tallies.Len(), visible, hidden)
	return nil
}

// tallyComponents groups records by component name in first-seen order.
func tallyComponents(records []body.Record) *orderedmap.OrderedMap[string, *componentTally] {
	tallies := orderedmap.NewOrderedMap[string, *componentTally]()
	for _, r := range records {
		t, ok := tallies.Get(r.ComponentName)
		if !ok {
			t = &componentTally{}
			tallies.Set(r.ComponentName, t)
		}
		if r.Visible {
			t.visible++
		} else {
			t.hidden++
		}
	}
	return tallies
}
