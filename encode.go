// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import "fmt"

// Encode encodes src in one call. opts may be nil (Chameleon, default block geometry).
// Checkpoints are acknowledged and ignored.
func Encode(src []byte, opts *Options) ([]byte, error) {
	enc, err := NewEncoder(opts)
	if err != nil {
		return nil, err
	}
	defer enc.Release()

	dst := make([]byte, MaxEncodedLen(len(src), enc.opts.Algorithm)+enc.opts.OutputLookahead)
	in, out := NewCursor(src), NewCursor(dst)

	for {
		switch status := enc.Process(in, out, true); status {
		case StatusFinished:
			return dst[:out.Position()], nil

		case StatusEfficiencyCheck, StatusNewBlock:
			continue

		default:
			return nil, fmt.Errorf("%w: encoder stopped with %s", ErrInvalidState, status)
		}
	}
}
