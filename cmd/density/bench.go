package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/density"
	"github.com/woozymasta/density/internal/logger"
)

// benchCodec is one round-trippable codec under measurement.
type benchCodec struct {
	name   string
	encode func(src []byte) ([]byte, error)
	decode func(src []byte) ([]byte, error)
}

type benchResult struct {
	File      string  `json:"file"`
	Codec     string  `json:"codec"`
	In        int     `json:"in"`
	Out       int     `json:"out"`
	Ratio     float64 `json:"ratio"`
	EncodeMBs float64 `json:"encode_mb_s"`
	DecodeMBs float64 `json:"decode_mb_s"`
}

func benchCmd() *cli.Command {
	var (
		runs     int
		jsonOut  bool
		withRefs bool
	)

	flags := append(codecFlags(),
		&cli.IntFlag{
			Name:        "runs",
			Aliases:     []string{"n"},
			Usage:       "round trips per codec and file",
			Value:       5,
			Destination: &runs,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "print results as JSON",
			Destination: &jsonOut,
		},
		&cli.BoolFlag{
			Name:        "reference",
			Usage:       "also measure s2 and zstd (fastest)",
			Value:       true,
			Destination: &withRefs,
		},
	)

	return &cli.Command{
		Name:      "bench",
		Usage:     "Measure ratio and throughput of each kernel on the given files",
		ArgsUsage: "FILE...",
		Flags:     flags,
		Before:    setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			if cmd.Args().Len() == 0 {
				return cli.Exit("error: bench needs at least one file", 1)
			}

			algorithms := []density.Algorithm{density.Chameleon, density.Cheetah}
			if cmd.IsSet("algorithm") {
				alg, err := density.ParseAlgorithm(algorithmName)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				algorithms = []density.Algorithm{alg}
			}

			codecs, closeCodecs, err := benchCodecs(algorithms, withRefs)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer closeCodecs()

			var results []benchResult
			for _, path := range cmd.Args().Slice() {
				data, err := os.ReadFile(path)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: read %s: %v", path, err), 1)
				}

				log.Debug("benchmarking", "file", path, "size", len(data), "runs", runs)
				fileResults, err := runBench(filepath.Base(path), data, codecs, runs)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				results = append(results, fileResults...)
			}

			if jsonOut {
				return writeBenchJSON(os.Stdout, results)
			}
			return writeBenchTable(os.Stdout, results)
		},
	}
}

// benchCodecs returns the density kernels, configured from the codec flags,
// followed by the reference codecs. The returned func releases zstd state.
func benchCodecs(algorithms []density.Algorithm, withRefs bool) ([]benchCodec, func(), error) {
	base, err := codecOptions()
	if err != nil {
		return nil, nil, err
	}

	var codecs []benchCodec
	for _, alg := range algorithms {
		opts := *base
		opts.Algorithm = alg
		codecs = append(codecs, benchCodec{
			name:   alg.String(),
			encode: func(src []byte) ([]byte, error) { return density.Encode(src, &opts) },
			decode: func(src []byte) ([]byte, error) { return density.Decode(src, &opts) },
		})
	}

	if !withRefs {
		return codecs, func() {}, nil
	}

	zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, nil, fmt.Errorf("zstd encoder: %w", err)
	}
	zdec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		_ = zenc.Close()
		return nil, nil, fmt.Errorf("zstd decoder: %w", err)
	}

	codecs = append(codecs,
		benchCodec{
			name:   "s2",
			encode: func(src []byte) ([]byte, error) { return s2.Encode(nil, src), nil },
			decode: func(src []byte) ([]byte, error) { return s2.Decode(nil, src) },
		},
		benchCodec{
			name:   "zstd-fastest",
			encode: func(src []byte) ([]byte, error) { return zenc.EncodeAll(src, nil), nil },
			decode: func(src []byte) ([]byte, error) { return zdec.DecodeAll(src, nil) },
		},
	)

	return codecs, func() {
		_ = zenc.Close()
		zdec.Close()
	}, nil
}

// runBench round-trips data through every codec runs times and keeps the
// fastest encode and decode.
func runBench(name string, data []byte, codecs []benchCodec, runs int) ([]benchResult, error) {
	runs = max(runs, 1)

	results := make([]benchResult, 0, len(codecs))
	for _, c := range codecs {
		var (
			encoded          []byte
			bestEnc, bestDec time.Duration
		)

		for i := range runs {
			start := time.Now()
			enc, err := c.encode(data)
			encTime := time.Since(start)
			if err != nil {
				return nil, fmt.Errorf("%s: encode %s: %w", c.name, name, err)
			}

			start = time.Now()
			dec, err := c.decode(enc)
			decTime := time.Since(start)
			if err != nil {
				return nil, fmt.Errorf("%s: decode %s: %w", c.name, name, err)
			}
			if !bytes.Equal(dec, data) {
				return nil, fmt.Errorf("%s: round trip of %s does not match the input", c.name, name)
			}

			if i == 0 || encTime < bestEnc {
				bestEnc = encTime
			}
			if i == 0 || decTime < bestDec {
				bestDec = decTime
			}
			encoded = enc
		}

		res := benchResult{
			File:      name,
			Codec:     c.name,
			In:        len(data),
			Out:       len(encoded),
			EncodeMBs: throughput(len(data), bestEnc),
			DecodeMBs: throughput(len(data), bestDec),
		}
		if len(data) > 0 {
			res.Ratio = float64(len(encoded)) / float64(len(data))
		}
		results = append(results, res)
	}

	return results, nil
}

func throughput(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds() / (1 << 20)
}

func writeBenchJSON(w io.Writer, results []benchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeBenchTable(w io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(tw, "file\tcodec\tin\tout\tratio\tencode MB/s\tdecode MB/s\t")
	for _, r := range results {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3f\t%.1f\t%.1f\t\n",
			r.File, r.Codec, r.In, r.Out, r.Ratio, r.EncodeMBs, r.DecodeMBs)
	}
	return tw.Flush()
}
