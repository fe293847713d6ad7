// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// signature packs one fixed-width code per word. Field i sits at bits
// [i*width, (i+1)*width) of value; value is serialized little-endian, so field 0
// always lands in the low bits of the first byte.
type signature struct {
	value uint64
	width uint
	count int // fields written (encode) or consumed (decode)
}

func newSignature(width uint) signature {
	return signature{width: width}
}

// capacity returns the number of fields in one signature.
func (s signature) capacity() int {
	return signatureBits / int(s.width)
}

func (s signature) full() bool {
	return s.count == s.capacity()
}

// open starts an empty signature for encoding.
func (s *signature) open() {
	s.value = 0
	s.count = 0
}

// load starts decoding a signature read from the stream.
func (s *signature) load(v uint64) {
	s.value = v
	s.count = 0
}

// set ORs code into field i.
func (s *signature) set(i int, code uint64) {
	s.value |= (code & s.mask()) << (uint(i) * s.width) //nolint:gosec // G115: i < capacity
}

// field returns the code stored in field i.
func (s signature) field(i int) uint64 {
	return (s.value >> (uint(i) * s.width)) & s.mask() //nolint:gosec // G115: i < capacity
}

// push sets the next field and advances.
func (s *signature) push(code uint64) {
	s.set(s.count, code)
	s.count++
}

// current returns the field at the decode position.
func (s signature) current() uint64 {
	return s.field(s.count)
}

// rest returns the fields from the current position on, shifted down. It is
// zero when only padding is left.
func (s signature) rest() uint64 {
	return s.value >> (uint(s.count) * s.width) //nolint:gosec // G115: count <= capacity
}

func (s signature) mask() uint64 {
	return 1<<s.width - 1
}
