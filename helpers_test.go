package density

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"testing"
)

// codec is the surface shared by Encoder and Decoder.
type codec interface {
	Process(in, out *Cursor, flush bool) Status
	Stats() Stats
}

type checkpoint struct {
	status Status
	stats  Stats
}

type driveResult struct {
	out         []byte
	checkpoints []checkpoint
	calls       int
}

func (r driveResult) count(status Status) int {
	n := 0
	for _, cp := range r.checkpoints {
		if cp.status == status {
			n++
		}
	}
	return n
}

// drive runs c to completion, offering input windows of inSize() bytes and
// fresh output windows of outSize() bytes per call. flush is set once the
// window reaches the end of src.
func drive(t testing.TB, c codec, src []byte, inSize, outSize func() int) driveResult {
	t.Helper()

	var res driveResult
	inPos := 0
	nextWindow := func() (*Cursor, bool) {
		end := min(inPos+inSize(), len(src))
		return NewCursor(src[inPos:end]), end == len(src)
	}

	in, flush := nextWindow()
	limit := 40*len(src) + 10000
	for ; res.calls < limit; res.calls++ {
		out := NewCursor(make([]byte, outSize()))
		status := c.Process(in, out, flush)
		res.out = append(res.out, out.Bytes()...)

		switch status {
		case StatusFinished:
			inPos += in.Position()
			if inPos != len(src) {
				t.Fatalf("finished with %d of %d input bytes consumed", inPos, len(src))
			}
			return res

		case StatusStallOnInput:
			if in.Remaining() != 0 {
				t.Fatalf("stall on input with %d bytes left in the window", in.Remaining())
			}
			inPos += in.Position()
			in, flush = nextWindow()

		case StatusStallOnOutput:

		case StatusEfficiencyCheck, StatusNewBlock:
			res.checkpoints = append(res.checkpoints, checkpoint{status: status, stats: c.Stats()})

		default:
			t.Fatalf("unexpected status %s", status)
		}
	}

	t.Fatalf("no completion after %d calls", res.calls)
	return res
}

func fixed(n int) func() int {
	return func() int { return n }
}

func randomSizes(seed uint64, maxSize int) func() int {
	rng := rand.New(rand.NewPCG(seed, seed^0x5deece66d))
	return func() int { return rng.IntN(maxSize) + 1 }
}

// sequence hands out sizes in order, then repeats the last one.
func sequence(sizes []int) func() int {
	i := 0
	return func() int {
		n := sizes[min(i, len(sizes)-1)]
		i++
		return n
	}
}

func mustEncoder(t testing.TB, opts *Options) *Encoder {
	t.Helper()
	enc, err := NewEncoder(opts)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	t.Cleanup(enc.Release)
	return enc
}

func mustDecoder(t testing.TB, opts *Options) *Decoder {
	t.Helper()
	dec, err := NewDecoder(opts)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	t.Cleanup(dec.Release)
	return dec
}

func mustEncode(t testing.TB, src []byte, opts *Options) []byte {
	t.Helper()
	enc, err := Encode(src, opts)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return enc
}

// words serializes values as little-endian words.
func words(values ...uint32) []byte {
	out := make([]byte, 0, 4*len(values))
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	return out
}

// cyclingWords returns n words cycling through period distinct non-zero values.
func cyclingWords(n, period int) []byte {
	values := make([]uint32, n)
	for i := range values {
		values[i] = uint32(i%period+1) * 0x01010101 //nolint:gosec // G115: small
	}
	return words(values...)
}

// distinctWords returns n pairwise distinct non-zero words.
func distinctWords(n int) []byte {
	values := make([]uint32, n)
	for i := range values {
		values[i] = uint32(i+1) * 0x9E3779B1 //nolint:gosec // G115: odd multiplier keeps values distinct
	}
	return words(values...)
}

func seededBytes(seed uint64, n int) []byte {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Uint32())
	}
	return out
}

// mixedCorpus interleaves text, runs, repeated words and noise.
func mixedCorpus(n int) []byte {
	var buf bytes.Buffer
	noise := seededBytes(7, n)
	for i := 0; buf.Len() < n; i++ {
		switch i % 4 {
		case 0:
			buf.WriteString("the quick brown fox jumps over the lazy dog; ")
		case 1:
			buf.Write(bytes.Repeat([]byte{0xAB, 0xCD}, 37))
		case 2:
			buf.Write(cyclingWords(29, 7))
		default:
			buf.Write(noise[:53])
			noise = noise[53:]
		}
	}
	return buf.Bytes()[:n]
}

type unitWord struct {
	code uint64
	body []byte
}

// parseStream splits an encoded stream into per-word codes and bodies plus the
// verbatim tail, independently of the Decoder. wordCount is the number of words
// the original input had.
func parseStream(t testing.TB, stream []byte, alg Algorithm, wordCount int) ([]unitWord, []byte) {
	t.Helper()

	width := alg.codeWidth()
	perSignature := signatureBits / int(width)
	mask := uint64(1)<<width - 1

	var out []unitWord
	pos := 0
	for len(out) < wordCount {
		if pos+signatureSize > len(stream) {
			t.Fatalf("stream ends inside a signature at %d", pos)
		}
		sig := binary.LittleEndian.Uint64(stream[pos:])
		pos += signatureSize

		for i := 0; i < perSignature && len(out) < wordCount; i++ {
			code := (sig >> (uint(i) * width)) & mask
			n := newKernel(alg).bodyLen(code)
			if pos+n > len(stream) {
				t.Fatalf("stream ends inside the body of word %d", len(out))
			}
			out = append(out, unitWord{code: code, body: stream[pos : pos+n]})
			pos += n
		}

		if used := wordCount % perSignature; len(out) == wordCount && used != 0 {
			if padding := sig >> (uint(used) * width); padding != 0 {
				t.Fatalf("padding of the last signature is %#x, want zero", padding)
			}
		}
	}

	return out, stream[pos:]
}
