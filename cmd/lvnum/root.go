// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/matrixio"
)

// app carries state resolved once by the root command's pre-run.
type app struct {
	configPath string
	logLevel   string
	format     string

	cfg *config.Config
	out matrixio.Writer
}

// Execute builds the command tree and runs it under ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvnum",
		Short:         "Dense matrix and vector arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", "", "output format (text|yaml|json)")

	root.AddCommand(
		demoCmd(a),
		addCmd(a),
		scaleCmd(a),
		dotCmd(a),
		normCmd(a),
		distanceCmd(a),
		normalizeCmd(a),
		eigenCmd(a),
		inverseCmd(a),
		inspectCmd(a),
	)

	return root
}

// setup resolves configuration (flag > env > file > default) and the logger.
// Validation runs once, after flags are applied, so a flag can repair a bad
// environment value.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Read(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := cfg.Writer()
	if err != nil {
		return err
	}
	a.cfg, a.out = cfg, out

	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	} else {
		log.Logger = zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	}
	log.Debug().
		Str("command", cmd.Name()).
		Str("format", string(out.Format)).
		Int("workers", cfg.Batch.Workers).
		Msg("lvnum starting")

	return nil
}

// open returns a reader for a file operand; "-" is stdin.
func open(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return f, nil
}

func loadMatrix(cmd *cobra.Command, name string) (*matrix.Dense, error) {
	rc, err := open(cmd, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	m, err := matrixio.ReadMatrix(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug().Str("file", name).Str("shape", m.Summary()).Msg("matrix loaded")

	return m, nil
}

func loadVector(cmd *cobra.Command, name string) ([]float64, error) {
	rc, err := open(cmd, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	v, err := matrixio.ReadVector(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug().Str("file", name).Int("len", len(v)).Msg("vector loaded")

	return v, nil
}
