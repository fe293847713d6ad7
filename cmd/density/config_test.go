package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/density"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
algorithm: cheetah
parallel: true
block_signatures: 512
log_format: json
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Algorithm != "cheetah" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Parallel == nil || !*cfg.Parallel {
		t.Fatal("parallel not loaded")
	}
	if cfg.BlockSignatures == nil || *cfg.BlockSignatures != 512 {
		t.Fatal("block_signatures not loaded")
	}
	if cfg.ResetCycle != nil {
		t.Fatal("reset_cycle should stay unset")
	}
}

func TestLoadConfig_ExplicitPathMustExist(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "block_signatures: [")); err == nil {
		t.Fatal("expected a parse error")
	}
}

// runWithConfig parses args into the package flag variables and applies cfg.
func runWithConfig(t *testing.T, cfg Config, args ...string) {
	t.Helper()

	cmd := &cli.Command{
		Name:  "test",
		Flags: append(globalFlags(), codecFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, cfg)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), append([]string{"test"}, args...)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestApplyConfig_FlagsWin(t *testing.T) {
	block, cycle := 512, 3
	cfg := Config{
		Algorithm:       "cheetah",
		BlockSignatures: &block,
		ResetCycle:      &cycle,
		LogLevel:        "debug",
	}

	runWithConfig(t, cfg, "-a", "chameleon", "--reset-cycle", "7")

	if algorithmName != "chameleon" {
		t.Errorf("algorithm = %q, explicit flag should win", algorithmName)
	}
	if resetCycle != 7 {
		t.Errorf("reset cycle = %d, explicit flag should win", resetCycle)
	}
	if blockSignatures != 512 {
		t.Errorf("block signatures = %d, want the config value", blockSignatures)
	}
	if logLevel != "debug" {
		t.Errorf("log level = %q, want the config value", logLevel)
	}
}

func TestCodecOptions(t *testing.T) {
	parallelOn := true
	runWithConfig(t, Config{Parallel: &parallelOn}, "-a", "cheetah", "--block-signatures", "64")

	opts, err := codecOptions()
	if err != nil {
		t.Fatalf("codecOptions failed: %v", err)
	}
	if opts.Algorithm != density.Cheetah || opts.BlockSignatures != 64 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.ResetCycle != density.ParallelResetCycle {
		t.Fatalf("parallel reset cycle = %d, want %d", opts.ResetCycle, density.ParallelResetCycle)
	}

	runWithConfig(t, Config{}, "-a", "lion")
	if _, err := codecOptions(); err == nil {
		t.Fatal("expected an error for an unknown algorithm")
	}
}
