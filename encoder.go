// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/density

package density

// encodeStage is where the next Process call resumes.
type encodeStage uint8

const (
	encodeInvalid  encodeStage = iota // zero value: never initialised or released
	encodePrepare                     // a new signature is due before the next word
	encodeWords                       // filling the open signature
	encodeDrain                       // copying the closed unit to the output
	encodeTail                        // copying the trailing partial word verbatim
	encodeFinished                    // stream complete
)

// Encoder is a resumable Chameleon or Cheetah encoder. It stages exactly one
// signature unit (the signature and the bodies it covers) and drains it to the
// output as room allows, so the encoded stream does not depend on how input
// and output are split across calls.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	opts  Options
	k     kernel
	life  blockLifecycle
	sig   signature
	carry carry
	stage encodeStage
	stats Stats

	unit    [maxUnitSize]byte
	unitLen int
	drained int
}

// NewEncoder returns an initialised encoder. opts may be nil.
func NewEncoder(opts *Options) (*Encoder, error) {
	resolved, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		opts: resolved,
		k:    newKernel(resolved.Algorithm),
		life: newBlockLifecycle(&resolved),
		sig:  newSignature(resolved.Algorithm.codeWidth()),
	}
	e.Init()

	return e, nil
}

// Init resets the dictionary and counters and rewinds to the start of a stream.
func (e *Encoder) Init() Status {
	if e.k == nil {
		return StatusError
	}

	e.k.reset()
	e.life.init()
	e.sig.open()
	e.carry.reset()
	e.unitLen, e.drained = 0, 0
	e.stats = Stats{}
	e.stage = encodePrepare

	return StatusReady
}

// Options returns the resolved options.
func (e *Encoder) Options() Options { return e.opts }

// Stats returns the counters accumulated since Init.
func (e *Encoder) Stats() Stats { return e.stats }

// Release returns the dictionary to its pool. The encoder must be re-initialised
// with Init before further use.
func (e *Encoder) Release() {
	if e.k != nil {
		e.k.release()
	}

	e.stage = encodeInvalid
}

// Process encodes from in to out. With flush set, in holds the end of the
// stream: the last signature is padded and closed, the trailing partial word
// is copied, and the call sequence ends with StatusFinished. Checkpoint and
// stall statuses must be answered by calling Process again.
func (e *Encoder) Process(in, out *Cursor, flush bool) Status {
	in, out = orEmpty(in), orEmpty(out)
	inStart, outStart := in.Position(), out.Position()

	status := e.process(in, out, flush)

	e.stats.In += int64(in.Position() - inStart)
	e.stats.Out += int64(out.Position() - outStart)

	return status
}

// Finish flushes the stream end and reports whether the encoder reached it.
func (e *Encoder) Finish(out *Cursor) (Status, error) {
	status := e.Process(nil, out, true)
	return status, status.Err()
}

func (e *Encoder) process(in, out *Cursor, flush bool) Status {
	for {
		switch e.stage {
		case encodePrepare:
			if e.carry.available(in) < wordSize {
				if flush {
					e.stage = encodeTail
					continue
				}

				e.carry.take(in, wordSize)
				return StatusStallOnInput
			}

			if status := e.life.prepare(out.Remaining(), e.k, &e.stats); status != StatusReady {
				return status
			}

			e.openUnit()
			e.stage = encodeWords

		case encodeWords:
			if !e.encodeWords(in) && !flush {
				return StatusStallOnInput
			}

			e.closeUnit()
			e.stage = encodeDrain

		case encodeDrain:
			e.drained += out.write(e.unit[e.drained:e.unitLen])
			if e.drained < e.unitLen {
				return StatusStallOnOutput
			}

			e.stage = encodePrepare

		case encodeTail:
			if !copyTail(&e.carry, in, out) {
				return StatusStallOnOutput
			}

			e.stage = encodeFinished
			return StatusFinished

		case encodeFinished:
			if in.Remaining() > 0 {
				return StatusError
			}

			return StatusFinished

		default:
			return StatusError
		}
	}
}

// encodeWords fills the open signature from in. It reports false when input
// runs out first; a partial word is then carried.
func (e *Encoder) encodeWords(in *Cursor) bool {
	for !e.sig.full() {
		if e.carry.n == 0 && e.sig.capacity()-e.sig.count >= batchWords && in.Remaining() >= batchWords*wordSize {
			span := in.next(batchWords * wordSize)
			e.encodeWord(load32(span[0:]))
			e.encodeWord(load32(span[4:]))
			e.encodeWord(load32(span[8:]))
			e.encodeWord(load32(span[12:]))
			continue
		}

		b, ok := e.carry.take(in, wordSize)
		if !ok {
			return false
		}

		e.encodeWord(load32(b))
	}

	return true
}

func (e *Encoder) encodeWord(chunk uint32) {
	code, n := e.k.encodeWord(chunk, e.unit[e.unitLen:])
	e.unitLen += n
	e.sig.push(code)
}

// openUnit reserves the signature slot at the head of the unit.
func (e *Encoder) openUnit() {
	e.sig.open()
	e.unitLen = signatureSize
	e.drained = 0
}

// closeUnit writes the signature into its slot; unused fields stay zero.
func (e *Encoder) closeUnit() {
	store64(e.unit[:signatureSize], e.sig.value)
}
