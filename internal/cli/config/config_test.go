package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data", "", "")
	flags.Bool("verbose", false, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDataPath, cfg.DataPath)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 8765, cfg.GetUIConfig().Port)
	assert.True(t, cfg.GetUIConfig().AutoOpen)
}

func TestLoadConfig_FromFile(t *testing.T) {
	defer ResetConfig()
	dir := t.TempDir()
	content := "data: cities.csv\nverbose: true\nui:\n  port: 3000\n  auto_open: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "costmap.yaml"), []byte(content), 0600))
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	// Relative data paths resolve against the config file's directory.
	assert.Equal(t, filepath.Join(dir, "cities.csv"), cfg.DataPath)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 3000, cfg.GetUIConfig().Port)
	assert.False(t, cfg.GetUIConfig().AutoOpen)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	defer ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "costmap.yaml"), []byte("data: from_file.csv\n"), 0600))
	chdir(t, dir)
	t.Setenv("COSTMAP_DATA", "from_env.csv")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "from_env.csv", cfg.DataPath)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	defer ResetConfig()
	chdir(t, t.TempDir())
	t.Setenv("COSTMAP_DATA", "from_env.csv")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--data", "from_flag.csv"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "from_flag.csv", cfg.DataPath)
}

func TestLoadConfig_UnsetFlagDoesNotOverride(t *testing.T) {
	defer ResetConfig()
	chdir(t, t.TempDir())
	t.Setenv("COSTMAP_DATA", "from_env.csv")

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)

	assert.Equal(t, "from_env.csv", cfg.DataPath)
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	defer ResetConfig()
	chdir(t, t.TempDir())

	_, err := LoadConfig("nope.yaml", nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Config{DataPath: "x.csv"}))
	assert.Error(t, Validate(&Config{}))
	assert.Error(t, Validate(&Config{DataPath: "x.csv", UI: &UIConfig{Port: 70000}}))
}

func TestValidateDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.NoError(t, (&Config{DataPath: path}).ValidateDataFile())
	assert.Error(t, (&Config{DataPath: filepath.Join(dir, "missing.csv")}).ValidateDataFile())
}
