// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the bigdec command from TOML or YAML
// files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/bigdecimal"
	"github.com/db47h/bigdecimal/internal/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultPlaces is the default number of decimal places of transcendental
// results.
const DefaultPlaces = 50

// Config holds the settings of the command line tool.
type Config struct {
	Precision      int       `toml:"precision" yaml:"precision"`
	AlwaysTruncate bool      `toml:"always_truncate" yaml:"always_truncate"`
	Places         int       `toml:"places" yaml:"places"`
	Log            LogConfig `toml:"log" yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `toml:"level" yaml:"level"`
	Encoding string `toml:"encoding" yaml:"encoding"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Precision: bigdecimal.DefaultPrecision,
		Places:    DefaultPlaces,
		Log: LogConfig{
			Level:    "info",
			Encoding: logging.ConsoleEncoding,
		},
	}
}

// Load reads the settings file at path. The format is chosen by extension:
// .toml, .yaml or .yml. Settings missing from the file keep their default
// value. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Precision < 0 {
		return errors.Errorf("negative precision %d", c.Precision)
	}
	if c.Places < 0 {
		return errors.Errorf("negative places %d", c.Places)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Encoding {
	case "", logging.ConsoleEncoding, logging.JSONEncoding:
	default:
		return errors.Errorf("unknown log encoding %q", c.Log.Encoding)
	}
	return nil
}

// Context returns the bigdecimal.Context described by c, logging to log.
func (c *Config) Context(log *zap.Logger) bigdecimal.Context {
	return bigdecimal.Context{
		Precision:      c.Precision,
		AlwaysTruncate: c.AlwaysTruncate,
		Logger:         log,
	}
}
