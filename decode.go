// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import (
	"fmt"
	"io"
)

// minDecodeBuffer is the smallest output buffer Decode starts with.
const minDecodeBuffer = 256

// Decode decodes src in one call, growing the output as needed. opts must match
// the options src was encoded with (nil for defaults).
// Returns ErrTruncatedInput if src stops inside announced body data.
func Decode(src []byte, opts *Options) ([]byte, error) {
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}
	defer dec.Release()

	dst := make([]byte, max(2*len(src), minDecodeBuffer))
	in, out := NewCursor(src), NewCursor(dst)

	for {
		switch status := dec.Process(in, out, true); status {
		case StatusFinished:
			if dec.Truncated() {
				return nil, ErrTruncatedInput
			}

			return dst[:out.Position()], nil

		case StatusStallOnOutput:
			grown := make([]byte, 2*len(dst))
			n := copy(grown, out.Bytes())
			dst = grown
			out = &Cursor{buf: dst, pos: n}

		case StatusEfficiencyCheck, StatusNewBlock:
			continue

		default:
			return nil, fmt.Errorf("%w: decoder stopped with %s", ErrInvalidState, status)
		}
	}
}

// DecodeInto decodes src into caller-managed dst and returns dst[:n].
// Returns ErrOutputOverrun when dst is too small.
func DecodeInto(src, dst []byte, opts *Options) ([]byte, error) {
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}
	defer dec.Release()

	in, out := NewCursor(src), NewCursor(dst)

	for {
		switch status := dec.Process(in, out, true); status {
		case StatusFinished:
			if dec.Truncated() {
				return nil, ErrTruncatedInput
			}

			return dst[:out.Position()], nil

		case StatusStallOnOutput:
			return nil, ErrOutputOverrun

		case StatusEfficiencyCheck, StatusNewBlock:
			continue

		default:
			return nil, fmt.Errorf("%w: decoder stopped with %s", ErrInvalidState, status)
		}
	}
}

// DecodeFromReader reads the full stream then calls Decode. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecodeFromReader(r io.Reader, opts *Options) ([]byte, error) {
	resolved, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	if resolved.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(resolved.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if resolved.MaxInputSize > 0 && len(src) > resolved.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decode(src, &resolved)
}
