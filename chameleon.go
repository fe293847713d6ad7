// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// chameleonDictionary holds the last word seen for every hash slot.
type chameleonDictionary struct {
	entries [tableSize]uint32
}

func (d *chameleonDictionary) reset() {
	clear(d.entries[:])
}

// lookupAndUpdate reports whether chunk is already canonical for its slot and
// stores it otherwise.
func (d *chameleonDictionary) lookupAndUpdate(chunk uint32) (hash uint16, hit bool) {
	hash = hashChunk(chunk)
	entry := &d.entries[hash]
	if *entry == chunk {
		return hash, true
	}

	*entry = chunk
	return hash, false
}

// chameleonKernel: literal words cost four body bytes, repeats cost their hash.
type chameleonKernel struct {
	dict *chameleonDictionary
}

func (k *chameleonKernel) codeWidth() uint { return chameleonCodeWidth }

func (k *chameleonKernel) encodeWord(chunk uint32, dst []byte) (uint64, int) {
	hash, hit := k.dict.lookupAndUpdate(chunk)
	if hit {
		store16(dst, hash)
		return chameleonReference, hashSize
	}

	store32(dst, chunk)
	return chameleonLiteral, wordSize
}

func (k *chameleonKernel) bodyLen(code uint64) int {
	if code == chameleonReference {
		return hashSize
	}

	return wordSize
}

func (k *chameleonKernel) decodeWord(code uint64, body []byte) uint32 {
	if code == chameleonReference {
		return k.dict.entries[load16(body)]
	}

	chunk := load32(body)
	k.dict.entries[hashChunk(chunk)] = chunk
	return chunk
}

func (k *chameleonKernel) reset() {
	if k.dict == nil {
		k.dict = acquireChameleonDictionary()
		return
	}

	k.dict.reset()
}

func (k *chameleonKernel) release() {
	releaseChameleonDictionary(k.dict)
	k.dict = nil
}
