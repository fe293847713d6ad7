package main

import (
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/density"
)

var (
	configFile      string
	logLevel        string
	logFormat       string
	algorithmName   string
	parallel        bool
	blockSignatures int
	efficiencyCheck int
	resetCycle      int
	statsJSON       bool
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: user config dir)",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &logFormat,
		},
	}
}

func codecFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "algorithm",
			Aliases:     []string{"a"},
			Usage:       "kernel (chameleon, cheetah)",
			Value:       density.Chameleon.String(),
			Destination: &algorithmName,
		},
		&cli.BoolFlag{
			Name:        "parallel",
			Usage:       "reset dictionaries every 64 blocks so the stream can be split for decoding",
			Destination: &parallel,
		},
		&cli.IntFlag{
			Name:        "block-signatures",
			Usage:       "signatures per block",
			Value:       density.DefaultOptions().BlockSignatures,
			Destination: &blockSignatures,
		},
		&cli.IntFlag{
			Name:        "efficiency-check",
			Usage:       "signatures into a block at which the efficiency check is reported (0: min(128, block-signatures/2))",
			Destination: &efficiencyCheck,
		},
		&cli.IntFlag{
			Name:        "reset-cycle",
			Usage:       "blocks between dictionary resets (0 never resets; overrides --parallel)",
			Destination: &resetCycle,
		},
	}
}

func statsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:        "stats-json",
		Usage:       "print stream counters as JSON to stdout when writing to a file",
		Destination: &statsJSON,
	}
}

// codecOptions builds density options from the resolved flag values.
func codecOptions() (*density.Options, error) {
	alg, err := density.ParseAlgorithm(algorithmName)
	if err != nil {
		return nil, err
	}

	opts := &density.Options{
		Algorithm:                 alg,
		BlockSignatures:           blockSignatures,
		EfficiencyCheckSignatures: efficiencyCheck,
		ResetCycle:                resetCycle,
	}
	if parallel && resetCycle == 0 {
		opts.ResetCycle = density.ParallelResetCycle
	}

	return opts, nil
}
