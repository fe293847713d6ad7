package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/density"
	"github.com/woozymasta/density/internal/logger"
)

func compressCmd() *cli.Command {
	return &cli.Command{
		Name:      "compress",
		Aliases:   []string{"c"},
		Usage:     "Encode a file (use - for stdin/stdout)",
		ArgsUsage: "[IN [OUT]]",
		Flags:     append(codecFlags(), statsFlag()),
		Before:    setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			opts, err := codecOptions()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			in, out, err := openStreams(cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer closeStreams(in, out)

			w, err := density.NewWriter(out, opts)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			w.OnCheckpoint = checkpointLogger(log)

			start := time.Now()
			if _, err := io.Copy(w, in); err != nil {
				return cli.Exit(fmt.Sprintf("error: compress: %v", err), 1)
			}
			if err := w.Close(); err != nil {
				return cli.Exit(fmt.Sprintf("error: compress: %v", err), 1)
			}

			return finish(log, "compressed", opts, w.Stats(), time.Since(start), out)
		},
	}
}

func decompressCmd() *cli.Command {
	return &cli.Command{
		Name:      "decompress",
		Aliases:   []string{"d"},
		Usage:     "Decode a file produced with the same codec flags (use - for stdin/stdout)",
		ArgsUsage: "[IN [OUT]]",
		Flags:     append(codecFlags(), statsFlag()),
		Before:    setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			opts, err := codecOptions()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			in, out, err := openStreams(cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer closeStreams(in, out)

			r, err := density.NewReader(in, opts)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			r.OnCheckpoint = checkpointLogger(log)

			start := time.Now()
			if _, err := io.Copy(out, r); err != nil {
				return cli.Exit(fmt.Sprintf("error: decompress: %v", err), 1)
			}

			return finish(log, "decompressed", opts, r.Stats(), time.Since(start), out)
		},
	}
}

// checkpointLogger reports block boundaries and efficiency checks at debug level.
func checkpointLogger(log logger.Logger) density.CheckpointFunc {
	return func(status density.Status, stats density.Stats) error {
		log.Debug(status.String(),
			"blocks", stats.Blocks,
			"resets", stats.Resets,
			"in", stats.In,
			"out", stats.Out,
		)
		return nil
	}
}

type streamReport struct {
	Operation string        `json:"operation"`
	Algorithm string        `json:"algorithm"`
	Stats     density.Stats `json:"stats"`
	Ratio     float64       `json:"ratio"`
	Seconds   float64       `json:"seconds"`
}

func finish(log logger.Logger, op string, opts *density.Options, stats density.Stats, elapsed time.Duration, out *os.File) error {
	log.Info(op,
		"algorithm", opts.Algorithm.String(),
		"in", stats.In,
		"out", stats.Out,
		"ratio", stats.Ratio(),
		"blocks", stats.Blocks,
		"resets", stats.Resets,
		"elapsed", elapsed,
	)

	if !statsJSON {
		return nil
	}

	report := streamReport{
		Operation: op,
		Algorithm: opts.Algorithm.String(),
		Stats:     stats,
		Ratio:     stats.Ratio(),
		Seconds:   elapsed.Seconds(),
	}

	dst := os.Stdout
	if out == os.Stdout {
		dst = os.Stderr
	}
	if err := json.NewEncoder(dst).Encode(report); err != nil {
		return cli.Exit(fmt.Sprintf("error: write stats: %v", err), 1)
	}
	return nil
}

// openStreams opens IN and OUT; an empty name or "-" means stdin or stdout.
func openStreams(inPath, outPath string) (*os.File, *os.File, error) {
	in := os.Stdin
	if inPath != "" && inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, nil, err
		}
		in = f
	}

	out := os.Stdout
	if outPath != "" && outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			if in != os.Stdin {
				_ = in.Close()
			}
			return nil, nil, err
		}
		out = f
	}

	return in, out, nil
}

func closeStreams(in, out *os.File) {
	if in != os.Stdin {
		_ = in.Close()
	}
	if out != os.Stdout {
		_ = out.Close()
	}
}
