// Package bits holds the packed bitstream representation shared by the
// source and channel coders. Bits are addressed most significant first
// within each byte; bit i is always the i-th emitted bit of the stream.
package bits

import (
	"errors"
)

var ErrBadBitChar = errors.New("bits: bitstring may only contain '0' and '1'")

type Stream struct {
	packed []byte
	length int
}

func New() *Stream {
	return &Stream{}
}

// FromString parses a textual bitstring such as "1101001".
func FromString(s string) (*Stream, error) {
	out := &Stream{packed: make([]byte, 0, (len(s)+7)/8)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out.Append(0)
		case '1':
			out.Append(1)
		default:
			return nil, ErrBadBitChar
		}
	}
	return out, nil
}

// Append adds one bit at the end of the stream. Any nonzero value counts
// as a one bit.
func (self *Stream) Append(bit byte) {
	if self.length%8 == 0 {
		self.packed = append(self.packed, 0)
	}
	if bit != 0 {
		self.packed[self.length/8] |= 1 << uint(7-self.length%8)
	}
	self.length++
}

// AppendStream appends every bit of other in order.
func (self *Stream) AppendStream(other *Stream) {
	for i := 0; i < other.length; i++ {
		self.Append(other.Bit(i))
	}
}

func (self *Stream) Bit(i int) byte {
	return (self.packed[i/8] >> uint(7-i%8)) & 1
}

func (self *Stream) Flip(i int) {
	self.packed[i/8] ^= 1 << uint(7-i%8)
}

func (self *Stream) Len() int {
	return self.length
}

func (self *Stream) Clone() *Stream {
	packed := make([]byte, len(self.packed))
	copy(packed, self.packed)
	return &Stream{packed: packed, length: self.length}
}

// Equal reports whether both streams hold the same bits in the same order.
// Unused low bits of the last byte are zero by construction, so the packed
// slices can be compared directly.
func (self *Stream) Equal(other *Stream) bool {
	if other == nil || self.length != other.length {
		return false
	}
	for i := range self.packed {
		if self.packed[i] != other.packed[i] {
			return false
		}
	}
	return true
}

func (self *Stream) String() string {
	out := make([]byte, self.length)
	for i := 0; i < self.length; i++ {
		if self.Bit(i) == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
