package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/density/internal/logger"
)

// Config represents the density configuration file (~/.config/density/config.yaml).
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	Algorithm       string `yaml:"algorithm"`
	Parallel        *bool  `yaml:"parallel"`
	BlockSignatures *int   `yaml:"block_signatures"`
	EfficiencyCheck *int   `yaml:"efficiency_check"`
	ResetCycle      *int   `yaml:"reset_cycle"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "density", "config.yaml")
}

// LoadConfig reads the config file at path, or the default location when path
// is empty. A missing default file yields a zero Config; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
		if path == "" {
			return Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig applies config file defaults to flag variables when the
// corresponding flag was not explicitly set.
func applyConfig(c *cli.Command, cfg Config) {
	if cfg.Algorithm != "" && !c.IsSet("algorithm") {
		algorithmName = cfg.Algorithm
	}
	if cfg.Parallel != nil && !c.IsSet("parallel") {
		parallel = *cfg.Parallel
	}
	if cfg.BlockSignatures != nil && !c.IsSet("block-signatures") {
		blockSignatures = *cfg.BlockSignatures
	}
	if cfg.EfficiencyCheck != nil && !c.IsSet("efficiency-check") {
		efficiencyCheck = *cfg.EfficiencyCheck
	}
	if cfg.ResetCycle != nil && !c.IsSet("reset-cycle") {
		resetCycle = *cfg.ResetCycle
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// setup loads the config file and installs the logger for the invoked command.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return ctx, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	applyConfig(cmd, cfg)

	log, err := logger.ForFormat(os.Stderr, logFormat, logger.ParseLevel(logLevel))
	if err != nil {
		return ctx, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	return logger.WithContext(ctx, log), nil
}
