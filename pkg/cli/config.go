// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of a --config file, e.g.:
//
//	run:
//	  - ^Stack/
//	skip:
//	  - slow
//	no_color: true
//	exit_zero: false
//	verbose: false
//
// Command line flags win: their patterns are added to the file's and a
// boolean is set if it is set in the file or on the command line.
type Config struct {
	Run      []string `yaml:"run"`
	Skip     []string `yaml:"skip"`
	NoColor  bool     `yaml:"no_color"`
	ExitZero bool     `yaml:"exit_zero"`
	Verbose  bool     `yaml:"verbose"`
}

// LoadConfig reads the YAML config file at given path.  Unknown keys
// are an error; an empty file is an empty config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge adds the options of a given config file to o.
func (o *Options) merge() error {
	if o.Config == "" {
		return nil
	}
	cfg, err := LoadConfig(o.Config)
	if err != nil {
		return err
	}
	for _, p := range cfg.Run {
		if err := o.Filters.MustMatch.Set(p); err != nil {
			return fmt.Errorf("config %s: run: %w", o.Config, err)
		}
	}
	for _, p := range cfg.Skip {
		if err := o.Filters.MustNotMatch.Set(p); err != nil {
			return fmt.Errorf("config %s: skip: %w", o.Config, err)
		}
	}
	o.NoColor = o.NoColor || cfg.NoColor
	o.ExitZero = o.ExitZero || cfg.ExitZero
	o.Verbose = o.Verbose || cfg.Verbose
	return nil
}
