package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/oracle"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypadchain.yaml")
	body := "depths: [3]\nlog_level: debug\nvalidate:\n  max_depth: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, cfg.Depths)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.CrossCheck.MaxDepth)
	// untouched keys keep their defaults
	assert.Equal(t, config.DefaultConfig().CrossCheck.MaxStates, cfg.CrossCheck.MaxStates)
	assert.Equal(t, config.DefaultConfig().Explain.MaxLength, cfg.Explain.MaxLength)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvDepths, "1, 4")
	t.Setenv(config.EnvLogLevel, "warn")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, cfg.Depths)
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv(config.EnvDepths, "two")
	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("depths: [\n"), 0o644))
	_, err := config.Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("depths: [-1]\n"), 0o644))
	_, err = config.Load(invalid)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"NoDepths", func(c *config.Config) { c.Depths = nil }},
		{"NegativeDepth", func(c *config.Config) { c.Depths = []int{2, -3} }},
		{"BadLevel", func(c *config.Config) { c.LogLevel = "loud" }},
		{"NegativeMaxDepth", func(c *config.Config) { c.CrossCheck.MaxDepth = -1 }},
		{"NegativeMaxStates", func(c *config.Config) { c.CrossCheck.MaxStates = -1 }},
		{"ZeroExplain", func(c *config.Config) { c.Explain.MaxLength = 0 }},
		{"HugeExplain", func(c *config.Config) { c.Explain.MaxLength = oracle.MaxExpandCeiling + 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, config.DefaultConfig().Validate())
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keypadchain.yaml")
	cfg := config.DefaultConfig()
	cfg.Depths = []int{0, 1, 2}
	require.NoError(t, cfg.Save(path))

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
