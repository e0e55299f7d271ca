package dashboard

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/cityindex-labs/costmap/internal/dataset"
	"github.com/cityindex-labs/costmap/internal/ui/notifier"
)

// SetupRoutes registers the dashboard feature routes.
func SetupRoutes(
	router chi.Router,
	store *dataset.Store,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
	isDev bool,
) error {
	handlers := NewHandlers(store, sessionStore, notify, logger, isDev)

	// Page route (full server-side render)
	router.Get("/", handlers.DashboardPage)

	// SSE route (live updates after dataset reloads)
	router.Get("/updates", handlers.Updates)

	// Filter actions driven by datastar signals
	router.Post("/filter", handlers.ApplyFilter)
	router.Post("/filter/all", handlers.SelectAllStates)
	router.Post("/filter/none", handlers.ClearAllStates)

	return nil
}
