package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityindex-labs/costmap/internal/ui/features"
)

func testCities() []features.TestCity {
	return []features.TestCity{
		{City: "Austin", State: "TX", Lat: 30.27, Lon: -97.74, Index: 100, Rent: 1500, RentOut: 1200, Salary: 4500, Groceries: 400, Dining: 300},
		{City: "Dallas", State: "TX", Lat: 32.78, Lon: -96.80, Index: 95, Rent: 1300, RentOut: 1000, Salary: 4300, Groceries: 380, Dining: 290},
		{City: "Boise", State: "ID", Lat: 43.62, Lon: -116.21, Index: 62.5, Rent: 1100, RentOut: 900, Salary: 3800, Groceries: 320, Dining: 220},
	}
}

func setupTestHandlers(t *testing.T, cities ...features.TestCity) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t, cities...)

	handlers := NewHandlers(
		fixture.Store,
		fixture.SessionStore,
		fixture.Notifier,
		fixture.Logger,
		true, // isDev
	)

	return handlers, fixture
}

func TestDashboardPage(t *testing.T) {
	h, _ := setupTestHandlers(t, testCities()...)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.DashboardPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	for _, want := range []string{
		"<!doctype html>",
		"US Cost of Living",
		"data-init",
		"/updates",
		`id="dashboard"`,
		`id="filter-panel"`,
		`id="map-view"`,
		`id="rent-chart"`,
		`id="scatter-chart"`,
		`id="ranking-chart"`,
		`id="data-table"`,
	} {
		assert.Contains(t, strings.ToLower(body), strings.ToLower(want))
	}

	// Default selection is everything: all three cities are rendered and
	// the KPI row reflects the full set.
	assert.Contains(t, body, "Austin, TX")
	assert.Contains(t, body, "Boise, ID")
	assert.Contains(t, body, "$1,300") // avg rent (1500+1300+1100)/3
}

func TestDashboardPage_LoadFailure(t *testing.T) {
	h, _ := setupTestHandlers(t) // empty dataset file is valid...

	// ...but a missing one is fatal.
	h2, fixture2 := setupTestHandlers(t, testCities()...)
	require.NoError(t, os.Remove(fixture2.SourcePath))
	fixture2.Store.Invalidate()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h2.DashboardPage(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Empty dataset still renders, with placeholder KPIs.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	h.DashboardPage(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "—")
}

func TestApplyFilter(t *testing.T) {
	h, _ := setupTestHandlers(t, testCities()...)

	body := `{"states":{"TX":true,"ID":false},"min":90,"max":100}`
	req := httptest.NewRequest(http.MethodPost, "/filter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ApplyFilter(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()

	assert.Contains(t, out, "datastar-patch-elements")
	assert.Contains(t, out, "Austin, TX")
	assert.Contains(t, out, "Dallas, TX")
	assert.NotContains(t, out, "Boise, ID")

	// Selection is persisted for the session.
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestApplyFilter_EmptySelection(t *testing.T) {
	h, _ := setupTestHandlers(t, testCities()...)

	body := `{"states":{"TX":false,"ID":false},"min":0,"max":200}`
	req := httptest.NewRequest(http.MethodPost, "/filter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ApplyFilter(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()

	// Placeholders, not errors.
	assert.Contains(t, out, "—")
	assert.Contains(t, out, "No cities match the current filters.")
	assert.NotContains(t, out, "Austin, TX")
}

func TestSelectAllAndClearAll(t *testing.T) {
	h, _ := setupTestHandlers(t, testCities()...)

	body := `{"states":{"TX":false,"ID":false},"min":0,"max":200}`
	req := httptest.NewRequest(http.MethodPost, "/filter/all", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.SelectAllStates(rec, req)
	out := rec.Body.String()
	assert.Contains(t, out, "Austin, TX")
	assert.Contains(t, out, "Boise, ID")

	req = httptest.NewRequest(http.MethodPost, "/filter/none", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()

	h.ClearAllStates(rec, req)
	out = rec.Body.String()
	assert.NotContains(t, out, "Austin, TX")
	assert.Contains(t, out, "No cities match the current filters.")
}

func TestUpdates_SendsViewOnBroadcast(t *testing.T) {
	h, fixture := setupTestHandlers(t, testCities()...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/updates", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Updates(rec, req)
		close(done)
	}()

	// Let the handler subscribe, then ping it.
	time.Sleep(50 * time.Millisecond)
	fixture.Notifier.Broadcast()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Updates handler did not exit on context cancel")
	}

	out := rec.Body.String()
	assert.Contains(t, out, "datastar-patch-elements")
	assert.Contains(t, out, "Austin, TX")
}
