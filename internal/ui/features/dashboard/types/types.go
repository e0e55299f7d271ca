// Package types provides shared view types for the dashboard feature.
package types

import (
	"github.com/cityindex-labs/costmap/internal/dataset"
	"github.com/cityindex-labs/costmap/internal/pipeline"
)

// ViewData is everything the dashboard page needs for one render: the
// filter panel bounds, the user's selection, and the pipeline outputs.
type ViewData struct {
	AllStates []string
	MinBound  float64
	MaxBound  float64
	Selection pipeline.Selection

	Stats   pipeline.Stats
	Map     []pipeline.MapPoint
	Rent    []pipeline.RentPair
	Scatter []pipeline.ScatterPoint
	Ranking []pipeline.RankEntry
	Table   []pipeline.TableRow
}

// BuildViewData runs the pipeline for a selection and packages the result.
func BuildViewData(records []dataset.Record, sel pipeline.Selection) ViewData {
	min, max := dataset.IndexRange(records)
	view := pipeline.Apply(records, sel)

	return ViewData{
		AllStates: dataset.States(records),
		MinBound:  min,
		MaxBound:  max,
		Selection: sel,
		Stats:     pipeline.Aggregate(view),
		Map:       pipeline.MapPoints(view),
		Rent:      pipeline.RentComparison(view),
		Scatter:   pipeline.SalaryScatter(view),
		Ranking:   pipeline.PowerRanking(view),
		Table:     pipeline.TableRows(view),
	}
}

// IsSelected reports whether a state is part of the current selection.
func (d ViewData) IsSelected(state string) bool {
	for _, s := range d.Selection.States {
		if s == state {
			return true
		}
	}
	return false
}

// Empty reports whether the current selection matched no rows.
func (d ViewData) Empty() bool {
	return d.Stats.Count == 0
}
