// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import "fmt"

// Options configures an encoder or decoder. Both sides of a stream must use the
// same Algorithm, BlockSignatures and ResetCycle; nothing in the stream records them.
// Zero fields take their defaults.
type Options struct {
	// Algorithm selects the kernel (default Chameleon).
	Algorithm Algorithm
	// BlockSignatures is the number of signatures per block (default 2048).
	BlockSignatures int
	// EfficiencyCheckSignatures is the signature count within a block at which
	// StatusEfficiencyCheck is raised (default 128, capped below BlockSignatures).
	EfficiencyCheckSignatures int
	// ResetCycle is the number of blocks between dictionary resets; 0 never resets.
	// A non-zero cycle makes every reset point decodable on its own.
	ResetCycle int
	// OutputLookahead is the output room required before a new signature is started (default 1).
	// Decoders cap it at one word.
	OutputLookahead int
	// MaxInputSize limits how many bytes DecodeFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultOptions returns options for Chameleon with default block geometry and no resets.
func DefaultOptions() *Options {
	return &Options{
		Algorithm:                 Chameleon,
		BlockSignatures:           defaultBlockSignatures,
		EfficiencyCheckSignatures: defaultEfficiencyCheckSignatures,
		OutputLookahead:           defaultOutputLookahead,
	}
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o *Options) withDefaults() Options {
	if o == nil {
		return *DefaultOptions()
	}

	out := *o
	if out.Algorithm == 0 {
		out.Algorithm = Chameleon
	}
	if out.BlockSignatures == 0 {
		out.BlockSignatures = defaultBlockSignatures
	}
	if out.EfficiencyCheckSignatures == 0 {
		out.EfficiencyCheckSignatures = min(defaultEfficiencyCheckSignatures, out.BlockSignatures/2)
	}
	if out.OutputLookahead == 0 {
		out.OutputLookahead = defaultOutputLookahead
	}

	return out
}

// validate reports the first inconsistent field.
func (o *Options) validate() error {
	if !o.Algorithm.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, o.Algorithm)
	}

	switch {
	case o.BlockSignatures < 1:
		return fmt.Errorf("%w: BlockSignatures must be positive, got %d", ErrInvalidOptions, o.BlockSignatures)
	case o.EfficiencyCheckSignatures < 0, o.EfficiencyCheckSignatures > 0 && o.EfficiencyCheckSignatures >= o.BlockSignatures:
		return fmt.Errorf("%w: EfficiencyCheckSignatures must be below BlockSignatures (%d), got %d",
			ErrInvalidOptions, o.BlockSignatures, o.EfficiencyCheckSignatures)
	case o.ResetCycle < 0:
		return fmt.Errorf("%w: ResetCycle must not be negative, got %d", ErrInvalidOptions, o.ResetCycle)
	case o.OutputLookahead < 0:
		return fmt.Errorf("%w: OutputLookahead must not be negative, got %d", ErrInvalidOptions, o.OutputLookahead)
	case o.MaxInputSize < 0:
		return fmt.Errorf("%w: MaxInputSize must not be negative, got %d", ErrInvalidOptions, o.MaxInputSize)
	}

	return nil
}

// resolveOptions applies defaults and validates.
func resolveOptions(o *Options) (Options, error) {
	resolved := o.withDefaults()
	if err := resolved.validate(); err != nil {
		return Options{}, err
	}

	return resolved, nil
}
