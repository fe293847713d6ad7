// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

/*
Package density implements the Chameleon and Cheetah dictionary kernels:
streaming, resumable encoders and decoders that replace repeated 4-byte words
with short hash references.

Chameleon keeps one hash table of recently seen words and spends one signature
bit per word (literal or reference). Cheetah adds a prediction table keyed by
the previous word's hash and spends two bits per word; a correctly predicted
word costs no body bytes at all.

# Stream layout

The encoded stream is a sequence of units, each an 8-byte little-endian
signature followed by the bodies of the words it covers (64 words for
Chameleon, 32 for Cheetah), then the final 0–3 input bytes copied verbatim.
Bodies are 4 raw bytes for a literal and a 2-byte little-endian hash for a
reference; a Cheetah prediction has no body. The stream carries no header: both
sides must agree on Options.

# One-shot

	enc, err := density.Encode(data, nil)
	dec, err := density.Decode(enc, nil)

	opts := &density.Options{Algorithm: density.Cheetah}
	enc, err = density.Encode(data, opts)
	dec, err = density.DecodeInto(enc, dst, opts)

# Resumable

Encoder and Decoder expose the state machine directly. Process advances as far
as the two cursors allow and reports why it stopped:

	enc, _ := density.NewEncoder(nil)
	in, out := density.NewCursor(src), density.NewCursor(buf)
	for {
		switch enc.Process(in, out, true) {
		case density.StatusStallOnOutput:
			// drain out.Bytes(), then out.Reset(buf)
		case density.StatusEfficiencyCheck, density.StatusNewBlock:
			// inspect enc.Stats(), then continue
		case density.StatusFinished:
			return
		}
	}

Output never depends on how input and output are split across calls, down to
one-byte windows.

# Parallel decoding

With Options.ResetCycle set, both sides clear their dictionaries every
ResetCycle blocks. The encoder reports every block boundary with
StatusNewBlock; Stats at that moment gives the exact input and output offsets,
and a fresh Decoder started at a reset point decodes the rest of the stream on
its own.

# Streams

NewWriter and NewReader wrap the codecs as io.Writer and io.Reader.
*/
package density
