package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cityindex-labs/costmap/internal/dataset"
)

// ImportOptions holds options for the import command.
type ImportOptions struct {
	Out string
}

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the CSV dataset into a SQLite database",
		Long: `Copy the CSV dataset into a SQLite database with a single cities table.

The resulting file is a drop-in replacement for the CSV source: point
--data (or data: in costmap.yaml) at it and the dashboard reads it
directly.`,
		Example: `  # Import the configured dataset into cities.db
  costmap import --out cities.db

  # Import a specific CSV
  costmap import --data ./us_cost_of_living.csv --out ./data/cities.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "cities.db", "Output SQLite database path")

	return cmd
}

func runImport(cmd *cobra.Command, opts *ImportOptions) error {
	cfg := getConfig()

	if err := cfg.ValidateDataFile(); err != nil {
		return err
	}

	n, err := dataset.ImportCSV(cfg.DataPath, opts.Out)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cities from %s into %s\n", n, cfg.DataPath, opts.Out)
	return nil
}
