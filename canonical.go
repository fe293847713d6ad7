// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import "encoding/binary"

// Canonical (little-endian) loads and stores. Hashing, literals, references and
// signatures all go through these, so the host byte order never matters.

func load16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func load32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func load64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func store16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

func store32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

func store64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// hashChunk maps a word to its dictionary slot.
func hashChunk(chunk uint32) uint16 {
	return uint16((chunk * hashMultiplier) >> (32 - hashBits)) //nolint:gosec // G115: shifted to hashBits
}
