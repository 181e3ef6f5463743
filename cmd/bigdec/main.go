// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigdec evaluates arbitrary precision decimal operations.
//
// Usage:
//
//	bigdec eval sqrt 2 --places 100
//	bigdec eval quo 1 7 --precision 40
//	bigdec list
//	bigdec version
package main

import (
	"os"

	"github.com/db47h/bigdecimal/internal/calc"
	"github.com/db47h/bigdecimal/internal/config"
	"github.com/db47h/bigdecimal/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	configFlagName      = "config"
	precisionFlagName   = "precision"
	truncateFlagName    = "truncate"
	placesFlagName      = "places"
	logLevelFlagName    = "log-level"
	logEncodingFlagName = "log-encoding"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bigdec",
		Short:         "Arbitrary precision decimal calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	f := cmd.PersistentFlags()
	f.String(configFlagName, "", "settings file (.toml, .yaml or .yml)")
	f.Int(precisionFlagName, 0, "significant digits of divisions")
	f.Bool(truncateFlagName, false, "truncate every result to the precision")
	f.Int(placesFlagName, 0, "decimal places of roots and transcendental functions")
	f.String(logLevelFlagName, "", "log level: debug, info, warn or error")
	f.String(logEncodingFlagName, "", "log encoding: console or json")

	cmd.AddCommand(newEvalCmd(), newListCmd(), newVersionCmd())
	return cmd
}

// loadConfig returns the settings file named by the config flag, or the
// defaults, with command line flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	path, err := f.GetString(configFlagName)
	if err != nil {
		return nil, err
	}
	cfg := config.Default()
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if f.Changed(precisionFlagName) {
		cfg.Precision, _ = f.GetInt(precisionFlagName)
	}
	if f.Changed(truncateFlagName) {
		cfg.AlwaysTruncate, _ = f.GetBool(truncateFlagName)
	}
	if f.Changed(placesFlagName) {
		cfg.Places, _ = f.GetInt(placesFlagName)
	}
	if f.Changed(logLevelFlagName) {
		cfg.Log.Level, _ = f.GetString(logLevelFlagName)
	}
	if f.Changed(logEncodingFlagName) {
		cfg.Log.Encoding, _ = f.GetString(logEncodingFlagName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	return cfg, nil
}

// setup returns the evaluation environment described by the settings and
// flags of cmd. The caller must Sync the returned logger.
func setup(cmd *cobra.Command) (calc.Env, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return calc.Env{}, nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return calc.Env{}, nil, err
	}
	log.Debug("settings",
		zap.Int("precision", cfg.Precision),
		zap.Bool("truncate", cfg.AlwaysTruncate),
		zap.Int("places", cfg.Places))
	return calc.Env{Context: cfg.Context(log), Places: cfg.Places}, log, nil
}
