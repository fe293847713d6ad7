// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// Wire format constants shared by both kernels.

// Unit sizes in bytes. All multi-byte values are little-endian on the wire.
const (
	wordSize      = 4 // one chunk
	hashSize      = 2 // primary-table reference
	signatureSize = 8 // one signature word
	signatureBits = signatureSize * 8
)

// Dictionary hash parameters. Both kernels index 2^hashBits slots.
const (
	hashBits       = 16
	hashMultiplier = 0x9D6EF916
	tableSize      = 1 << hashBits
)

// Chameleon signature codes, one bit per word.
const (
	chameleonCodeWidth = 1
	chameleonLiteral   = 0
	chameleonReference = 1
)

// Cheetah signature codes, two bits per word. Literal is zero so that the
// padding of a final partial signature never reads as a body-less code.
const (
	cheetahCodeWidth = 2
	cheetahLiteral   = 0
	cheetahMapA      = 1
	cheetahMapB      = 2
	cheetahPredicted = 3
)

// batchWords is the number of words the encoder takes per fast-path step.
const batchWords = 4

// maxUnitSize bounds one signature plus its body (all-literal Chameleon unit).
const maxUnitSize = signatureSize + signatureBits/chameleonCodeWidth*wordSize

// Block lifecycle defaults.
const (
	defaultBlockSignatures           = 1 << 11
	defaultEfficiencyCheckSignatures = 1 << 7
	defaultOutputLookahead           = 1

	// ParallelResetCycle is the preferred reset cycle for output meant to be
	// decoded in parallel.
	ParallelResetCycle = 1 << 6
)
