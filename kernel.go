// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// kernel is one algorithm's dictionary plus its per-word encode and decode
// steps. decodeWord must perform exactly the table reads and writes that
// encodeWord performed for the same code, or the two sides drift apart.
type kernel interface {
	// codeWidth is the number of signature bits per word.
	codeWidth() uint
	// encodeWord writes the body for chunk into dst (room for one word is
	// guaranteed) and returns the signature code and body length.
	encodeWord(chunk uint32, dst []byte) (code uint64, n int)
	// bodyLen returns the body bytes that follow a word encoded as code.
	bodyLen(code uint64) int
	// decodeWord rebuilds the word for code from its body.
	decodeWord(code uint64, body []byte) uint32
	// reset clears the dictionary, acquiring one if released.
	reset()
	// release hands the dictionary back to its pool.
	release()
}

func newKernel(alg Algorithm) kernel {
	switch alg {
	case Cheetah:
		return &cheetahKernel{}
	default:
		return &chameleonKernel{}
	}
}
