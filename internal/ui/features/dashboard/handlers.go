// Package dashboard provides the cost-of-living dashboard feature: the
// page itself, the datastar filter endpoints, and the live-update stream.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/cityindex-labs/costmap/internal/dataset"
	"github.com/cityindex-labs/costmap/internal/pipeline"
	"github.com/cityindex-labs/costmap/internal/ui/features/dashboard/pages"
	dashtypes "github.com/cityindex-labs/costmap/internal/ui/features/dashboard/types"
	"github.com/cityindex-labs/costmap/internal/ui/notifier"
)

const (
	sessionName  = "costmap"
	selectionKey = "selection"
)

// filterSignals mirrors the datastar signals bound in the filter panel.
// States is keyed by state code; only true entries are selected.
type filterSignals struct {
	States map[string]bool `json:"states"`
	Min    float64         `json:"min"`
	Max    float64         `json:"max"`
}

// Handlers provides HTTP handlers for the dashboard feature.
type Handlers struct {
	store        *dataset.Store
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *dataset.Store, sessionStore sessions.Store, notify *notifier.Notifier, logger *slog.Logger, isDev bool) *Handlers {
	return &Handlers{
		store:        store,
		sessionStore: sessionStore,
		notifier:     notify,
		logger:       logger,
		isDev:        isDev,
	}
}

// DashboardPage renders the full dashboard server-side from the session's
// last selection, defaulting to everything.
func (h *Handlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sel := h.loadSelection(r, records)
	data := dashtypes.BuildViewData(records, sel)

	if err := pages.DashboardPage("US Cost of Living", h.isDev, data).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ApplyFilter reads the filter signals, stores the selection in the
// session, and patches the whole dashboard body in one SSE response.
func (h *Handlers) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	// Read signals before NewSSE: the SSE generator consumes the body.
	var signals filterSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	records, err := h.store.Snapshot()
	if err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sel := pipeline.Selection{Min: signals.Min, Max: signals.Max}
	// Preserve data order for determinism; signal maps are unordered.
	for _, state := range dataset.States(records) {
		if signals.States[state] {
			sel.States = append(sel.States, state)
		}
	}

	h.saveSelection(w, r, sel)
	h.patchDashboard(w, r, records, sel)
}

// SelectAllStates resets the selection to every state, keeping the range.
func (h *Handlers) SelectAllStates(w http.ResponseWriter, r *http.Request) {
	h.resetStates(w, r, true)
}

// ClearAllStates empties the state selection, keeping the range.
func (h *Handlers) ClearAllStates(w http.ResponseWriter, r *http.Request) {
	h.resetStates(w, r, false)
}

func (h *Handlers) resetStates(w http.ResponseWriter, r *http.Request, all bool) {
	var signals filterSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	records, err := h.store.Snapshot()
	if err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sel := pipeline.Selection{Min: signals.Min, Max: signals.Max}
	if all {
		sel.States = dataset.States(records)
	}

	h.saveSelection(w, r, sel)
	h.patchDashboard(w, r, records, sel)
}

// Updates is the long-lived SSE endpoint. Each notifier ping (dataset
// reloaded) re-renders the dashboard with the client's stored selection.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			records, err := h.store.Snapshot()
			if err != nil {
				_ = sse.ConsoleError(err)
				continue
			}
			sel := h.loadSelection(r, records)
			data := dashtypes.BuildViewData(records, sel)
			if err := sse.PatchElementTempl(pages.Dashboard(data)); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// patchDashboard recomputes the pipeline and morphs the dashboard body,
// filter panel included, in a single patch.
func (h *Handlers) patchDashboard(w http.ResponseWriter, r *http.Request, records []dataset.Record, sel pipeline.Selection) {
	sse := datastar.NewSSE(w, r)
	data := dashtypes.BuildViewData(records, sel)
	if err := sse.PatchElementTempl(pages.Dashboard(data)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// loadSelection reads the session's selection, falling back to the
// identity selection (all states, full range) for new sessions.
func (h *Handlers) loadSelection(r *http.Request, records []dataset.Record) pipeline.Selection {
	session, err := h.sessionStore.Get(r, sessionName)
	if err != nil {
		return pipeline.AllOf(records)
	}

	raw, ok := session.Values[selectionKey].(string)
	if !ok {
		return pipeline.AllOf(records)
	}

	var sel pipeline.Selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return pipeline.AllOf(records)
	}
	return sel
}

// saveSelection writes the selection into the cookie session. Must run
// before the SSE response starts so the Set-Cookie header can still go out.
func (h *Handlers) saveSelection(w http.ResponseWriter, r *http.Request, sel pipeline.Selection) {
	session, err := h.sessionStore.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes as an error but still yields
		// a fresh session we can write to.
		h.logger.Debug("new session after decode error", "error", err)
	}
	if session == nil {
		return
	}

	raw, err := json.Marshal(sel)
	if err != nil {
		return
	}
	session.Values[selectionKey] = string(raw)
	if err := session.Save(r, w); err != nil {
		h.logger.Warn("failed to save session", "error", err)
	}
}
