// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// Cursor is a movable position over a caller-owned byte region. A codec reads
// from one Cursor and writes to another; the two must not share memory.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Reset repositions the cursor at the start of b.
func (c *Cursor) Reset(b []byte) {
	c.buf = b
	c.pos = 0
}

// Position returns the number of bytes consumed or written so far.
func (c *Cursor) Position() int { return c.pos }

// Capacity returns the size of the underlying region.
func (c *Cursor) Capacity() int { return len(c.buf) }

// Remaining returns Capacity - Position.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the region before the position: consumed input or written output.
func (c *Cursor) Bytes() []byte { return c.buf[:c.pos] }

// Rest returns the region after the position.
func (c *Cursor) Rest() []byte { return c.buf[c.pos:] }

// advance moves the position forward by n bytes.
func (c *Cursor) advance(n int) {
	if n < 0 || n > c.Remaining() {
		panic("density: cursor advanced past capacity")
	}

	c.pos += n
}

// next returns the n bytes at the position and advances past them.
func (c *Cursor) next(n int) []byte {
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.advance(n)
	return b
}

// write copies as much of p as fits and returns the count.
func (c *Cursor) write(p []byte) int {
	n := copy(c.buf[c.pos:], p)
	c.pos += n
	return n
}

// orEmpty lets Process accept nil cursors.
func orEmpty(c *Cursor) *Cursor {
	if c == nil {
		return &Cursor{}
	}

	return c
}
