// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

import (
	"errors"
	"fmt"
	"io"
)

// streamBufferSize is the staging buffer used by Writer and Reader.
const streamBufferSize = 64 << 10

// CheckpointFunc observes StatusEfficiencyCheck and StatusNewBlock with the
// codec's counters at that point. Returning an error stops the stream.
type CheckpointFunc func(status Status, stats Stats) error

// Writer encodes everything written to it into an underlying io.Writer.
// Close must be called to write the stream end.
type Writer struct {
	w   io.Writer
	enc *Encoder
	buf []byte
	out Cursor
	err error

	// OnCheckpoint, when set, is called for every checkpoint status.
	OnCheckpoint CheckpointFunc
}

// NewWriter returns a Writer encoding to w. opts may be nil.
func NewWriter(w io.Writer, opts *Options) (*Writer, error) {
	enc, err := NewEncoder(opts)
	if err != nil {
		return nil, err
	}

	return &Writer{w: w, enc: enc, buf: make([]byte, streamBufferSize)}, nil
}

// Write encodes p. Up to three trailing bytes may stay buffered until the next
// Write or Close.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	in := NewCursor(p)
	if err := w.run(in, false); err != nil {
		return in.Position(), err
	}

	return len(p), nil
}

// Close writes the end of the stream and releases the dictionary. It does not
// close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		if errors.Is(w.err, errWriterClosed) {
			return nil
		}
		return w.err
	}

	err := w.run(nil, true)
	w.enc.Release()
	if err != nil {
		return err
	}

	w.err = errWriterClosed
	return nil
}

// Stats returns the encoder counters.
func (w *Writer) Stats() Stats { return w.enc.Stats() }

var errWriterClosed = errors.New("density: writer closed")

func (w *Writer) run(in *Cursor, flush bool) error {
	for {
		w.out.Reset(w.buf)
		status := w.enc.Process(in, &w.out, flush)

		if n := w.out.Position(); n > 0 {
			if _, err := w.w.Write(w.buf[:n]); err != nil {
				w.err = err
				return err
			}
		}

		switch status {
		case StatusStallOnInput, StatusFinished:
			return nil

		case StatusStallOnOutput:
			continue

		case StatusEfficiencyCheck, StatusNewBlock:
			if w.OnCheckpoint != nil {
				if err := w.OnCheckpoint(status, w.enc.Stats()); err != nil {
					w.err = err
					return err
				}
			}

		default:
			w.err = fmt.Errorf("%w: encoder stopped with %s", ErrInvalidState, status)
			return w.err
		}
	}
}

// Reader decodes a stream read from an underlying io.Reader.
type Reader struct {
	r   io.Reader
	dec *Decoder
	buf []byte
	off int
	end int
	eof bool
	err error

	// OnCheckpoint, when set, is called for every checkpoint status.
	OnCheckpoint CheckpointFunc
}

// NewReader returns a Reader decoding from r. opts must match the encoder's.
func NewReader(r io.Reader, opts *Options) (*Reader, error) {
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}

	return &Reader{r: r, dec: dec, buf: make([]byte, streamBufferSize)}, nil
}

// Read decodes into p. It returns ErrTruncatedInput instead of io.EOF when the
// stream stopped inside announced body data.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	out := NewCursor(p)
	for {
		in := NewCursor(r.buf[r.off:r.end])
		status := r.dec.Process(in, out, r.eof)
		r.off += in.Position()

		switch status {
		case StatusStallOnInput:
			if out.Position() > 0 {
				return out.Position(), nil
			}

			if err := r.fill(); err != nil {
				r.err = err
				return 0, err
			}

		case StatusStallOnOutput:
			return out.Position(), nil

		case StatusEfficiencyCheck, StatusNewBlock:
			if r.OnCheckpoint != nil {
				if err := r.OnCheckpoint(status, r.dec.Stats()); err != nil {
					r.err = err
					return out.Position(), err
				}
			}

		case StatusFinished:
			r.err = io.EOF
			if r.dec.Truncated() {
				r.err = ErrTruncatedInput
			}
			r.dec.Release()

			if out.Position() > 0 {
				return out.Position(), nil
			}
			return 0, r.err

		default:
			r.err = fmt.Errorf("%w: decoder stopped with %s", ErrInvalidState, status)
			return out.Position(), r.err
		}
	}
}

// Stats returns the decoder counters.
func (r *Reader) Stats() Stats { return r.dec.Stats() }

// fill reads more compressed input. The decoder consumed everything before a
// stall on input, so the buffer restarts at zero.
func (r *Reader) fill() error {
	r.off, r.end = 0, 0

	n, err := r.r.Read(r.buf)
	r.end = n

	switch {
	case errors.Is(err, io.EOF):
		r.eof = true
		return nil
	case err != nil:
		return err
	}

	return nil
}
