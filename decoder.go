// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// decodeStage is where the next Process call resumes.
type decodeStage uint8

const (
	decodeInvalid  decodeStage = iota // zero value: never initialised or released
	decodePrepare                     // a signature is due next
	decodeWords                       // decoding the fields of the current signature
	decodeTail                        // copying the trailing bytes verbatim
	decodeFinished                    // stream complete
)

// Decoder is a resumable Chameleon or Cheetah decoder. Partial signatures and
// bodies are carried between calls and a decoded word that does not fit the
// output is staged, so any split of input and output decodes the same bytes.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	opts  Options
	k     kernel
	life  blockLifecycle
	sig   signature
	carry carry
	stage decodeStage
	stats Stats

	word     [wordSize]byte
	wordLen  int
	wordOff  int
	dangling bool
}

// NewDecoder returns an initialised decoder. opts may be nil but must match the encoder's.
func NewDecoder(opts *Options) (*Decoder, error) {
	resolved, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// A decoder stages at most one word, so it never needs more room than that.
	lifeOpts := resolved
	lifeOpts.OutputLookahead = min(resolved.OutputLookahead, wordSize)

	d := &Decoder{
		opts: resolved,
		k:    newKernel(resolved.Algorithm),
		life: newBlockLifecycle(&lifeOpts),
		sig:  newSignature(resolved.Algorithm.codeWidth()),
	}
	d.Init()

	return d, nil
}

// Init resets the dictionary and counters and rewinds to the start of a stream.
// A decoder initialised at a reset point of a stream encoded with a ResetCycle
// decodes from there on.
func (d *Decoder) Init() Status {
	if d.k == nil {
		return StatusError
	}

	d.k.reset()
	d.life.init()
	d.sig.load(0)
	d.carry.reset()
	d.wordLen, d.wordOff = 0, 0
	d.dangling = false
	d.stats = Stats{}
	d.stage = decodePrepare

	return StatusReady
}

// Options returns the resolved options.
func (d *Decoder) Options() Options { return d.opts }

// Stats returns the counters accumulated since Init.
func (d *Decoder) Stats() Stats { return d.stats }

// Truncated reports whether the stream ended while body data was still announced.
func (d *Decoder) Truncated() bool { return d.dangling }

// Release returns the dictionary to its pool. The decoder must be re-initialised
// with Init before further use.
func (d *Decoder) Release() {
	if d.k != nil {
		d.k.release()
	}

	d.stage = decodeInvalid
}

// Process decodes from in to out. With flush set, in holds the end of the
// stream and whatever cannot form another word is copied out verbatim.
func (d *Decoder) Process(in, out *Cursor, flush bool) Status {
	in, out = orEmpty(in), orEmpty(out)
	inStart, outStart := in.Position(), out.Position()

	status := d.process(in, out, flush)

	d.stats.In += int64(in.Position() - inStart)
	d.stats.Out += int64(out.Position() - outStart)

	return status
}

// Finish flushes the stream end. It returns ErrTruncatedInput if the stream
// stopped inside announced body data; the bytes seen are still written.
func (d *Decoder) Finish(out *Cursor) (Status, error) {
	status := d.Process(nil, out, true)
	if err := status.Err(); err != nil {
		return status, err
	}

	if status == StatusFinished && d.dangling {
		return status, ErrTruncatedInput
	}

	return status, nil
}

func (d *Decoder) process(in, out *Cursor, flush bool) Status {
	for {
		switch d.stage {
		case decodePrepare:
			if !d.flushWord(out) {
				return StatusStallOnOutput
			}

			if d.carry.available(in) < signatureSize {
				if flush {
					// The encoder never leaves a whole word after the last unit.
					d.dangling = d.carry.available(in) >= wordSize
					d.stage = decodeTail
					continue
				}

				d.carry.take(in, signatureSize)
				return StatusStallOnInput
			}

			if status := d.life.prepare(out.Remaining(), d.k, &d.stats); status != StatusReady {
				return status
			}

			b, _ := d.carry.take(in, signatureSize)
			d.sig.load(load64(b))
			d.stage = decodeWords

		case decodeWords:
			if status, ok := d.decodeWords(in, out, flush); !ok {
				return status
			}

		case decodeTail:
			if !d.flushWord(out) || !copyTail(&d.carry, in, out) {
				return StatusStallOnOutput
			}

			d.stage = decodeFinished
			return StatusFinished

		case decodeFinished:
			if in.Remaining() > 0 {
				return StatusError
			}

			return StatusFinished

		default:
			return StatusError
		}
	}
}

// decodeWords decodes the remaining fields of the current signature. It moves
// to the next stage and reports true, or returns the stall to report.
func (d *Decoder) decodeWords(in, out *Cursor, flush bool) (Status, bool) {
	for !d.sig.full() {
		if !d.flushWord(out) {
			return StatusStallOnOutput, false
		}

		code := d.sig.current()
		body, ok := d.carry.take(in, d.k.bodyLen(code))
		if !ok {
			if !flush {
				return StatusStallOnInput, false
			}

			// Padding is all literal codes; anything else still expected a body.
			d.dangling = d.sig.rest() != 0
			d.stage = decodeTail
			return StatusReady, true
		}

		chunk := d.k.decodeWord(code, body)
		d.sig.count++

		if out.Remaining() >= wordSize {
			store32(out.next(wordSize), chunk)
			continue
		}

		store32(d.word[:], chunk)
		d.wordLen, d.wordOff = wordSize, 0
	}

	d.stage = decodePrepare
	return StatusReady, true
}

// flushWord writes out the staged word and reports whether none is left.
func (d *Decoder) flushWord(out *Cursor) bool {
	d.wordOff += out.write(d.word[d.wordOff:d.wordLen])
	if d.wordOff < d.wordLen {
		return false
	}

	d.wordLen, d.wordOff = 0, 0
	return true
}
