// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// carry holds the leading bytes of a unit (word, hash or signature) whose
// remainder has not arrived yet.
type carry struct {
	buf [signatureSize]byte
	n   int
	off int // bytes already released by drain
}

// available returns how many bytes take could draw on.
func (c *carry) available(in *Cursor) int {
	return c.n + in.Remaining()
}

// take returns the next need bytes, assembling them across calls when the unit
// straddles input cursors. When in runs dry first, everything read stays
// carried and ok is false. The returned slice is valid until the next take.
func (c *carry) take(in *Cursor, need int) (b []byte, ok bool) {
	if c.n == 0 && in.Remaining() >= need {
		return in.next(need), true
	}

	k := min(need-c.n, in.Remaining())
	copy(c.buf[c.n:], in.next(k))
	c.n += k
	if c.n < need {
		return nil, false
	}

	c.n = 0
	return c.buf[:need], true
}

// drain copies the carried bytes to out verbatim and reports whether all fit.
func (c *carry) drain(out *Cursor) bool {
	c.off += out.write(c.buf[c.off:c.n])
	if c.off < c.n {
		return false
	}

	c.n, c.off = 0, 0
	return true
}

func (c *carry) reset() {
	c.n, c.off = 0, 0
}

// copyTail moves the verbatim end of a stream: carried bytes first, then the
// rest of in. It reports whether everything fit in out.
func copyTail(c *carry, in, out *Cursor) bool {
	if !c.drain(out) {
		return false
	}

	in.advance(out.write(in.Rest()))
	return in.Remaining() == 0
}
