// Package features provides shared test utilities for UI feature tests.
package features

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/cityindex-labs/costmap/internal/dataset"
	"github.com/cityindex-labs/costmap/internal/testutil"
	"github.com/cityindex-labs/costmap/internal/ui/notifier"
)

// TestCity builds one fixture row with minimal boilerplate.
type TestCity struct {
	City      string
	State     string
	Lat       float64
	Lon       float64
	Index     float64
	Rent      float64
	RentOut   float64
	Salary    float64
	Groceries float64
	Dining    float64
}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Store        *dataset.Store
	SessionStore *sessions.CookieStore
	Notifier     *notifier.Notifier
	Logger       *slog.Logger

	// SourcePath is the temp CSV backing the store; tests can rewrite it
	// and invalidate to simulate dataset reloads.
	SourcePath string
}

// SetupTestFixture writes the cities to a temp CSV and wires a store,
// session store, and notifier around it.
func SetupTestFixture(t *testing.T, cities ...TestCity) *TestFixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte(BuildCSV(cities)), 0600))

	return &TestFixture{
		Store:        dataset.NewStore(path),
		SessionStore: sessions.NewCookieStore([]byte("test-secret")),
		Notifier:     notifier.New(),
		Logger:       testutil.NewTestLogger(t),
		SourcePath:   path,
	}
}

// BuildCSV renders fixture rows as a dataset CSV document.
func BuildCSV(cities []TestCity) string {
	var b strings.Builder
	b.WriteString(strings.Join(dataset.Columns, ","))
	b.WriteByte('\n')
	for _, c := range cities {
		fmt.Fprintf(&b, "%s,%s,%g,%g,%g,%g,%g,%g,%g,%g\n",
			c.City, c.State, c.Lat, c.Lon, c.Index,
			c.Rent, c.RentOut, c.Salary, c.Groceries, c.Dining)
	}
	return b.String()
}
