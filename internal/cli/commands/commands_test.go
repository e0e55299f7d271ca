package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityindex-labs/costmap/internal/cli/config"
)

const fixtureCSV = `City,State,Lat,Lon,Cost_of_Living_Index,Rent_1BR_City_Center,Rent_1BR_Outside_Center,Avg_Monthly_Net_Salary,Groceries_Monthly_Est,Dining_Monthly_Est
Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300
Dallas,TX,32.78,-96.80,95,1300,1000,4300,380,290
Boise,ID,43.62,-116.21,62.5,1100,900,3800,320,220
`

func setupDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0600))

	SetConfig(&config.Config{DataPath: path})
	t.Cleanup(func() { SetConfig(nil) })
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestTopCommand(t *testing.T) {
	setupDataset(t)

	out := execute(t, NewTopCommand())

	assert.Contains(t, out, "Purchasing Power")
	assert.Contains(t, out, "(3 rows)")

	// Best first: Boise (2.32) ahead of Dallas (2.18) and Austin (2.05).
	first := out[:len(out)/2]
	assert.Contains(t, first, "Boise, ID")
}

func TestTopCommand_Filters(t *testing.T) {
	setupDataset(t)

	out := execute(t, NewTopCommand(), "--states", "TX", "--min", "90", "--max", "100", "--limit", "1")

	assert.Contains(t, out, "Dallas, TX")
	assert.NotContains(t, out, "Austin, TX")
	assert.NotContains(t, out, "Boise, ID")
	assert.Contains(t, out, "(1 rows)")
}

func TestTopCommand_EmptyResult(t *testing.T) {
	setupDataset(t)

	out := execute(t, NewTopCommand(), "--states", "ZZ")

	assert.Contains(t, out, "(0 rows)")
}

func TestCheckCommand(t *testing.T) {
	path := setupDataset(t)

	out := execute(t, NewCheckCommand())

	assert.Contains(t, out, path)
	assert.Contains(t, out, "Cities: 3")
	assert.Contains(t, out, "States: 2")
	assert.Contains(t, out, "62.5 – 100.0")
	assert.Contains(t, out, "defined for all rows")
}

func TestCheckCommand_MissingDataset(t *testing.T) {
	SetConfig(&config.Config{DataPath: filepath.Join(t.TempDir(), "nope.csv")})
	t.Cleanup(func() { SetConfig(nil) })

	cmd := NewCheckCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestImportCommand(t *testing.T) {
	setupDataset(t)
	dbPath := filepath.Join(t.TempDir(), "cities.db")

	out := execute(t, NewImportCommand(), "--out", dbPath)

	assert.Contains(t, out, "Imported 3 cities")
	assert.FileExists(t, dbPath)
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, NewVersionCommand("1.2.3", "2026-01-01", "abc123"))

	assert.Contains(t, out, "costmap v1.2.3")
	assert.Contains(t, out, "abc123")
}
