// Package hamming implements the Hamming(7,4) channel coder. Each 4-bit
// data group becomes a 7-bit block laid out as p1,p2,d1,p4,d2,d3,d4 with
// even parity, which corrects at most one flipped bit per block.
package hamming

import (
	"errors"

	"github.com/harlequix/bitpipe/internal/bits"
)

const (
	DataBits  = 4
	BlockBits = 7
)

var ErrBlockLength = errors.New("hamming: coded length must be a multiple of 7")

// Encode pads data with zero bits up to a multiple of 4, encodes every
// group into a 7-bit block and returns the coded stream together with the
// pad count. The pad count must travel with the stream so Decode can strip
// the padding again.
func Encode(data *bits.Stream) (*bits.Stream, int) {
	pad := (DataBits - data.Len()%DataBits) % DataBits
	padded := data.Clone()
	for i := 0; i < pad; i++ {
		padded.Append(0)
	}

	out := bits.New()
	for i := 0; i < padded.Len(); i += DataBits {
		d1 := padded.Bit(i)
		d2 := padded.Bit(i + 1)
		d3 := padded.Bit(i + 2)
		d4 := padded.Bit(i + 3)

		p1 := d1 ^ d2 ^ d4
		p2 := d1 ^ d3 ^ d4
		p4 := d2 ^ d3 ^ d4

		out.Append(p1)
		out.Append(p2)
		out.Append(d1)
		out.Append(p4)
		out.Append(d2)
		out.Append(d3)
		out.Append(d4)
	}
	return out, pad
}

// Decode checks every 7-bit block, flips the single position the syndrome
// points at when it is nonzero, extracts the data bits and strips the last
// pad bits. Two or more flipped bits inside one block drive the syndrome
// to the wrong position; the output is then wrong but deterministic, a
// structural limit of the code.
func Decode(coded *bits.Stream, pad int) (*bits.Stream, error) {
	if coded.Len()%BlockBits != 0 {
		return nil, ErrBlockLength
	}

	work := coded.Clone()
	out := bits.New()
	for i := 0; i < work.Len(); i += BlockBits {
		s1 := work.Bit(i) ^ work.Bit(i+2) ^ work.Bit(i+4) ^ work.Bit(i+6)
		s2 := work.Bit(i+1) ^ work.Bit(i+2) ^ work.Bit(i+5) ^ work.Bit(i+6)
		s4 := work.Bit(i+3) ^ work.Bit(i+4) ^ work.Bit(i+5) ^ work.Bit(i+6)

		errorPos := int(s1) + 2*int(s2) + 4*int(s4)
		if errorPos != 0 {
			work.Flip(i + errorPos - 1)
		}

		out.Append(work.Bit(i + 2))
		out.Append(work.Bit(i + 4))
		out.Append(work.Bit(i + 5))
		out.Append(work.Bit(i + 6))
	}

	if pad == 0 {
		return out, nil
	}
	trimmed := bits.New()
	for i := 0; i < out.Len()-pad; i++ {
		trimmed.Append(out.Bit(i))
	}
	return trimmed, nil
}
