// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// cheetahEntry keeps the two most recent words seen for a hash slot.
type cheetahEntry struct {
	a uint32 // most recent
	b uint32 // the one before
}

// cheetahDictionary is the two-level Cheetah state: a primary table indexed by
// the word's own hash and a prediction table indexed by the previous word's hash.
type cheetahDictionary struct {
	entries    [tableSize]cheetahEntry
	prediction [tableSize]uint32
	lastHash   uint16
}

// reset clears both tables and the hash register, so a reset point carries no
// state from before it.
func (d *cheetahDictionary) reset() {
	clear(d.entries[:])
	clear(d.prediction[:])
	d.lastHash = 0
}

// lookupAndUpdate classifies chunk and applies the matching table updates.
func (d *cheetahDictionary) lookupAndUpdate(chunk uint32) (hash uint16, code uint64) {
	hash = hashChunk(chunk)
	predicted := &d.prediction[d.lastHash]
	d.lastHash = hash

	if *predicted == chunk {
		return hash, cheetahPredicted
	}
	*predicted = chunk

	entry := &d.entries[hash]
	switch chunk {
	case entry.a:
		return hash, cheetahMapA
	case entry.b:
		code = cheetahMapB
	default:
		code = cheetahLiteral
	}

	entry.b = entry.a
	entry.a = chunk
	return hash, code
}

func (d *cheetahDictionary) predicted() uint32 {
	chunk := d.prediction[d.lastHash]
	d.lastHash = hashChunk(chunk)
	return chunk
}

func (d *cheetahDictionary) mapA(hash uint16) uint32 {
	chunk := d.entries[hash].a
	d.prediction[d.lastHash] = chunk
	d.lastHash = hash
	return chunk
}

func (d *cheetahDictionary) mapB(hash uint16) uint32 {
	entry := &d.entries[hash]
	chunk := entry.b
	entry.b = entry.a
	entry.a = chunk
	d.prediction[d.lastHash] = chunk
	d.lastHash = hash
	return chunk
}

func (d *cheetahDictionary) literal(chunk uint32) uint32 {
	hash := hashChunk(chunk)
	entry := &d.entries[hash]
	entry.b = entry.a
	entry.a = chunk
	d.prediction[d.lastHash] = chunk
	d.lastHash = hash
	return chunk
}

// cheetahKernel: predicted words cost nothing but their code, primary-table hits
// cost the hash, literals cost the word.
type cheetahKernel struct {
	dict *cheetahDictionary
}

func (k *cheetahKernel) codeWidth() uint { return cheetahCodeWidth }

func (k *cheetahKernel) encodeWord(chunk uint32, dst []byte) (uint64, int) {
	hash, code := k.dict.lookupAndUpdate(chunk)
	switch code {
	case cheetahPredicted:
		return code, 0
	case cheetahMapA, cheetahMapB:
		store16(dst, hash)
		return code, hashSize
	default:
		store32(dst, chunk)
		return code, wordSize
	}
}

func (k *cheetahKernel) bodyLen(code uint64) int {
	switch code {
	case cheetahPredicted:
		return 0
	case cheetahMapA, cheetahMapB:
		return hashSize
	default:
		return wordSize
	}
}

func (k *cheetahKernel) decodeWord(code uint64, body []byte) uint32 {
	switch code {
	case cheetahPredicted:
		return k.dict.predicted()
	case cheetahMapA:
		return k.dict.mapA(load16(body))
	case cheetahMapB:
		return k.dict.mapB(load16(body))
	default:
		return k.dict.literal(load32(body))
	}
}

func (k *cheetahKernel) reset() {
	if k.dict == nil {
		k.dict = acquireCheetahDictionary()
		return
	}

	k.dict.reset()
}

func (k *cheetahKernel) release() {
	releaseCheetahDictionary(k.dict)
	k.dict = nil
}
