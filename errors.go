// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrInvalidState is returned when a codec is driven from a stage it cannot
	// resume: never initialised, released, or fed input after it finished.
	ErrInvalidState = errors.New("invalid codec state")
	// ErrTruncatedInput is returned when the compressed stream ends while a
	// signature still announces body data.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrOutputOverrun is returned when DecodeInto runs out of destination space.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrInputTooLarge is returned when DecodeFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrUnknownAlgorithm is returned for an Algorithm value or name that names no kernel.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
