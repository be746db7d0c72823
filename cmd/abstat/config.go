// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abstat/abstat/abboot"
	"github.com/abstat/abstat/abpower"
)

// settings is the configuration shared by all commands. It can be read
// from a YAML file and overridden by flags.
type settings struct {
	Alpha        float64 `yaml:"alpha"`
	Iterations   int     `yaml:"iterations"`
	Seed         int64   `yaml:"seed"`
	Workers      int     `yaml:"workers"`
	ResampleSize int     `yaml:"resample_size"`
	Method       string  `yaml:"method"`
	Power        float64 `yaml:"power"`
	Significance float64 `yaml:"significance"`
}

func defaultSettings() settings {
	b, p := abboot.DefaultConfig, abpower.DefaultOptions
	return settings{
		Alpha:        b.Alpha,
		Iterations:   b.Iterations,
		Seed:         b.Seed,
		Workers:      b.Workers,
		ResampleSize: b.ResampleSize,
		Method:       b.Method.String(),
		Power:        p.Power,
		Significance: p.Significance,
	}
}

// loadSettings decodes the YAML file at path over s. Keys missing
// from the file keep their value in s; unknown keys are an error.
func loadSettings(path string, s *settings) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

// override copies the fields of flags whose flag was set on the
// command line.
func (s *settings) override(flags settings, changed func(name string) bool) {
	if changed("alpha") {
		s.Alpha = flags.Alpha
	}
	if changed("iterations") {
		s.Iterations = flags.Iterations
	}
	if changed("seed") {
		s.Seed = flags.Seed
	}
	if changed("workers") {
		s.Workers = flags.Workers
	}
	if changed("resample-size") {
		s.ResampleSize = flags.ResampleSize
	}
	if changed("method") {
		s.Method = flags.Method
	}
	if changed("power") {
		s.Power = flags.Power
	}
	if changed("significance") {
		s.Significance = flags.Significance
	}
}

func (s settings) bootConfig(log *zap.Logger) (*abboot.Config, error) {
	method, err := abboot.ParseMethod(s.Method)
	if err != nil {
		return nil, err
	}
	return &abboot.Config{
		Alpha:        s.Alpha,
		Iterations:   s.Iterations,
		Seed:         s.Seed,
		Workers:      s.Workers,
		ResampleSize: s.ResampleSize,
		Method:       method,
		Logger:       log,
	}, nil
}
