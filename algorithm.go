// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import (
	"fmt"
	"strings"
)

// Algorithm selects a kernel.
type Algorithm uint8

const (
	// Chameleon uses a single hash dictionary and one signature bit per word.
	Chameleon Algorithm = iota + 1
	// Cheetah adds a prediction table keyed by the previous word's hash and
	// uses two signature bits per word.
	Cheetah
)

// String returns the lower-case kernel name.
func (a Algorithm) String() string {
	switch a {
	case Chameleon:
		return "chameleon"
	case Cheetah:
		return "cheetah"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm parses a kernel name (case-insensitive).
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chameleon":
		return Chameleon, nil
	case "cheetah":
		return Cheetah, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

func (a Algorithm) valid() bool {
	return a == Chameleon || a == Cheetah
}

// codeWidth returns the signature bits spent per word.
func (a Algorithm) codeWidth() uint {
	if a == Cheetah {
		return cheetahCodeWidth
	}

	return chameleonCodeWidth
}

// MaxEncodedLen returns the largest encoded size of n input bytes, reached when
// every word is a literal. It returns -1 for an unknown algorithm.
func MaxEncodedLen(n int, alg Algorithm) int {
	if !alg.valid() || n < 0 {
		return -1
	}

	perSignature := signatureBits / int(alg.codeWidth())
	words := n / wordSize
	signatures := (words + perSignature - 1) / perSignature

	return n + signatures*signatureSize
}
