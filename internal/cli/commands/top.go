package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cityindex-labs/costmap/internal/pipeline"
)

// TopOptions holds options for the top command.
type TopOptions struct {
	States []string
	Min    float64
	Max    float64
	Limit  int
}

// NewTopCommand creates the top command.
func NewTopCommand() *cobra.Command {
	opts := &TopOptions{}

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the purchasing-power ranking in the terminal",
		Long: `Rank cities by purchasing power (net salary over rent + groceries +
dining), best first, using the same filter pipeline as the dashboard.`,
		Example: `  # Best purchasing power across all cities
  costmap top

  # Texas and Colorado only, index between 60 and 90
  costmap top --states TX,CO --min 60 --max 90 --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTop(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.States, "states", nil, "States to include (default: all)")
	cmd.Flags().Float64Var(&opts.Min, "min", 0, "Minimum cost-of-living index")
	cmd.Flags().Float64Var(&opts.Max, "max", 0, "Maximum cost-of-living index")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "Maximum rows to print (0 for all)")

	return cmd
}

func runTop(cmd *cobra.Command, opts *TopOptions) error {
	cfg := getConfig()

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	sel := pipeline.AllOf(records)
	if len(opts.States) > 0 {
		sel.States = opts.States
	}
	if cmd.Flags().Changed("min") {
		sel.Min = opts.Min
	}
	if cmd.Flags().Changed("max") {
		sel.Max = opts.Max
	}

	view := pipeline.Apply(records, sel)
	ranking := pipeline.PowerRanking(view)

	// The dashboard ranks ascending for its bar chart; the terminal reads
	// top-down, so reverse to best-first.
	for i, j := 0, len(ranking)-1; i < j; i, j = i+1, j-1 {
		ranking[i], ranking[j] = ranking[j], ranking[i]
	}
	if opts.Limit > 0 && len(ranking) > opts.Limit {
		ranking = ranking[:opts.Limit]
	}

	renderRanking(cmd.OutOrStdout(), ranking)
	return nil
}

func renderRanking(w io.Writer, ranking []pipeline.RankEntry) {
	if len(ranking) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "City", "Purchasing Power"})
	for i, e := range ranking {
		t.AppendRow(table.Row{i + 1, e.City, pipeline.Power(e.Power)})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(ranking))
}
