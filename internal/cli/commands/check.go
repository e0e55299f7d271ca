package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cityindex-labs/costmap/internal/dataset"
	"github.com/cityindex-labs/costmap/internal/pipeline"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the dataset and print a summary",
		Long: `Load the dataset the same way the dashboard does and report what it
contains: row and state counts, the observed cost-of-living index range,
and any rows whose purchasing power is undefined (zero total expenses).

Exits non-zero if the dataset cannot be loaded.`,
		Example: `  costmap check
  costmap check --data ./data/cities.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	cfg := getConfig()
	out := cmd.OutOrStdout()

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	states := dataset.States(records)
	min, max := dataset.IndexRange(records)

	var undefined []string
	for _, r := range records {
		if math.IsNaN(r.PurchasingPower) {
			undefined = append(undefined, r.CityState)
		}
	}

	fmt.Fprintf(out, "Dataset: %s\n", cfg.DataPath)
	fmt.Fprintf(out, "  Cities: %s\n", pipeline.Count(len(records)))
	fmt.Fprintf(out, "  States: %d\n", len(states))
	fmt.Fprintf(out, "  CoL index range: %s – %s\n", pipeline.Index(min), pipeline.Index(max))

	if len(undefined) == 0 {
		fmt.Fprintln(out, "  Purchasing power: defined for all rows")
	} else {
		fmt.Fprintf(out, "  Purchasing power undefined for %d row(s):\n", len(undefined))
		for _, name := range undefined {
			fmt.Fprintf(out, "    - %s\n", name)
		}
	}

	return nil
}
