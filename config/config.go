// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/batch"
	"github.com/katalvlaran/lvnum/matrixio"
)

// Environment variables that override the file.
const (
	EnvLogLevel     = "LVNUM_LOG_LEVEL"
	EnvOutputFormat = "LVNUM_OUTPUT_FORMAT"
	EnvWorkers      = "LVNUM_WORKERS"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the CLI configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"` // human-readable output instead of JSON lines
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"` // text only; -1 is shortest round-trip
}

// BatchConfig controls the parallel batch layer.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 means runtime.GOMAXPROCS(0)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Console: true},
		Output: OutputConfig{Format: string(matrixio.FormatText), Precision: matrixio.DefaultPrecision},
		Batch:  BatchConfig{Workers: 0},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides and validates the result. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read is Load without the final Validate, for callers that layer further
// overrides (command-line flags) on top and validate once at the end.
// Only unreadable input fails here: a missing-but-named file is fine, a
// malformed one or an unparsable LVNUM_WORKERS is not.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides copies LVNUM_* variables over cfg.
func applyEnvOverrides(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvOutputFormat); ok && v != "" {
		cfg.Output.Format = v
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		cfg.Batch.Workers = n
	}

	return nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if _, err := matrixio.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("%w: output.precision %d (want >= -1)", ErrInvalid, c.Output.Precision)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers %d (want >= 0)", ErrInvalid, c.Batch.Workers)
	}

	return nil
}

// LogLevel returns the parsed zerolog level, falling back to info.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || c.Log.Level == "" {
		return zerolog.InfoLevel
	}

	return lvl
}

// Writer returns the result writer described by the output section.
func (c *Config) Writer() (matrixio.Writer, error) {
	f, err := matrixio.ParseFormat(c.Output.Format)
	if err != nil {
		return matrixio.Writer{}, err
	}

	return matrixio.Writer{Format: f, Precision: c.Output.Precision}, nil
}

// BatchOptions translates the batch section into batch options.
func (c *Config) BatchOptions() []batch.Option {
	if c.Batch.Workers > 0 {
		return []batch.Option{batch.WithWorkers(c.Batch.Workers)}
	}

	return nil
}
