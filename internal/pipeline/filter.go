// Package pipeline turns a filter selection into the view and the
// presentation projections the dashboard renders.
//
// Every function here is pure: given the same records and selection it
// produces the same output, and the input slice is never mutated. The
// dashboard re-runs the whole pipeline on each filter change and each of
// the five views derives its own projection from the same filtered view.
package pipeline

import "github.com/cityindex-labs/costmap/internal/dataset"

// Selection is the user's current filter: a set of states and an inclusive
// cost-of-living index range. It lives only as long as the browser session.
type Selection struct {
	States []string `json:"states"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
}

// AllOf builds the identity selection for records: every distinct state and
// the full observed index range.
func AllOf(records []dataset.Record) Selection {
	min, max := dataset.IndexRange(records)
	return Selection{
		States: dataset.States(records),
		Min:    min,
		Max:    max,
	}
}

// View is an ordered subset of the loaded records, in original load order.
type View struct {
	Records []dataset.Record
}

// Apply filters records by the selection: a row is kept iff its state is
// selected and its index falls inside [Min, Max], both ends inclusive.
// States absent from the data match nothing; Min > Max yields an empty
// view. Neither case is an error.
func Apply(records []dataset.Record, sel Selection) View {
	selected := make(map[string]struct{}, len(sel.States))
	for _, s := range sel.States {
		selected[s] = struct{}{}
	}

	var out []dataset.Record
	for _, r := range records {
		if _, ok := selected[r.State]; !ok {
			continue
		}
		if r.CostOfLivingIndex < sel.Min || r.CostOfLivingIndex > sel.Max {
			continue
		}
		out = append(out, r)
	}
	return View{Records: out}
}

// Empty reports whether the view has no rows.
func (v View) Empty() bool { return len(v.Records) == 0 }
