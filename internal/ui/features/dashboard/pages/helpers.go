// Package pages contains the templ components for the dashboard feature.
package pages

import (
	"encoding/json"

	"github.com/cityindex-labs/costmap/internal/ui/features/common"
	"github.com/cityindex-labs/costmap/internal/ui/features/dashboard/types"
)

// bound formats a dataset index bound for the range input placeholders.
func bound(v float64) string {
	return common.Ftoa(v)
}

// signalsJSON serializes the current selection into the datastar signals
// the filter panel binds against. Every known state gets an entry so the
// checkbox bindings always have a backing signal.
func signalsJSON(data types.ViewData) string {
	states := make(map[string]bool, len(data.AllStates))
	for _, s := range data.AllStates {
		states[s] = data.IsSelected(s)
	}
	payload := map[string]any{
		"states": states,
		"min":    data.Selection.Min,
		"max":    data.Selection.Max,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
