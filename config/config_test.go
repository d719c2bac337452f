// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/matrixio"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lvnum.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
		assert.Nil(t, cfg.BatchOptions())
	}
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	p := writeFile(t, "log:\n  level: debug\noutput:\n  format: json\nbatch:\n  workers: 3\n")
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Console, "unset keys keep their defaults")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, matrixio.DefaultPrecision, cfg.Output.Precision)
	assert.Equal(t, 3, cfg.Batch.Workers)
	assert.Len(t, cfg.BatchOptions(), 1)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "log:\n  level: debug\noutput:\n  format: json\n")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvOutputFormat, "yaml")
	t.Setenv(config.EnvWorkers, " 7 ")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 7, cfg.Batch.Workers)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("BadYAML", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "log: [unterminated"))
		assert.Error(t, err)
	})
	t.Run("BadWorkersEnv", func(t *testing.T) {
		t.Setenv(config.EnvWorkers, "many")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
	t.Run("Directory", func(t *testing.T) {
		_, err := config.Load(t.TempDir())
		assert.Error(t, err)
	})
}

// TestRead_DefersValidation checks that Read returns an out-of-range value
// for the caller to override, while Load rejects it.
func TestRead_DefersValidation(t *testing.T) {
	t.Setenv(config.EnvOutputFormat, "xml")

	cfg, err := config.Read("")
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Output.Format)
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg.Output.Format = "json"
	assert.NoError(t, cfg.Validate())

	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRead_Errors(t *testing.T) {
	_, err := config.Read(writeFile(t, "log: [unterminated"))
	assert.Error(t, err)

	t.Setenv(config.EnvWorkers, "many")
	_, err = config.Read("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"Level":     func(c *config.Config) { c.Log.Level = "loud" },
		"EmptyLvl":  func(c *config.Config) { c.Log.Level = "" },
		"Format":    func(c *config.Config) { c.Output.Format = "xml" },
		"Precision": func(c *config.Config) { c.Output.Precision = -2 },
		"Workers":   func(c *config.Config) { c.Batch.Workers = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, config.Default().Validate())
}

func TestWriter(t *testing.T) {
	c := config.Default()
	c.Output.Format = "yml"
	c.Output.Precision = 4
	w, err := c.Writer()
	require.NoError(t, err)
	assert.Equal(t, matrixio.Writer{Format: matrixio.FormatYAML, Precision: 4}, w)
}
