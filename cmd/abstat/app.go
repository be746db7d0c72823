// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abstat/abstat/abboot"
	"github.com/abstat/abstat/abpower"
)

// app holds the state shared by all commands.
type app struct {
	stdout io.Writer

	configPath string
	verbose    bool

	// flags holds flag values; settings holds the effective
	// configuration once the config file and flags are merged.
	flags    settings
	settings settings

	log *zap.Logger
}

func newApp(stdout io.Writer) *app {
	return &app{stdout: stdout}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "abstat",
		Short:         "Statistics for A/B experiments",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	def := defaultSettings()
	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "read defaults from YAML `file`")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log debugging output")
	f.Float64Var(&a.flags.Alpha, "alpha", def.Alpha, "significance level; intervals have confidence 1-alpha")
	f.IntVar(&a.flags.Iterations, "iterations", def.Iterations, "number of bootstrap resamples")
	f.Int64Var(&a.flags.Seed, "seed", def.Seed, "random seed; 0 derives the seed from the data")
	f.IntVar(&a.flags.Workers, "workers", def.Workers, "number of goroutines drawing resamples")
	f.IntVar(&a.flags.ResampleSize, "resample-size", def.ResampleSize, "observations per resample; 0 means the sample size")
	f.StringVar(&a.flags.Method, "method", def.Method, "interval method: percentile or pivotal")

	root.AddCommand(
		a.ciCommand(),
		a.compareCommand(),
		a.proportionsCommand(),
		a.normalityCommand(),
		a.sampleSizeCommand(),
	)
	return root
}

// setup resolves the settings and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	s := defaultSettings()
	if a.configPath != "" {
		if err := loadSettings(a.configPath, &s); err != nil {
			return err
		}
	}
	s.override(a.flags, cmd.Flags().Changed)
	a.settings = s

	if a.log == nil {
		log, err := newLogger(a.verbose)
		if err != nil {
			return err
		}
		a.log = log
	}
	a.log.Debug("settings resolved",
		zap.String("config", a.configPath),
		zap.Any("settings", a.settings))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func (a *app) bootConfig() (*abboot.Config, error) {
	return a.settings.bootConfig(a.log)
}

func (a *app) powerOptions() *abpower.Options {
	return &abpower.Options{Power: a.settings.Power, Significance: a.settings.Significance}
}
