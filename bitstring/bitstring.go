// Package bitstring provides the append-only binary code accumulator used by the
// arithmetic coder, together with the two interval extension algorithms that grow
// it: ExtendAround during encoding and ExtendInside at finalization.
//
// A BitString of length L with integer value n (most significant bit first)
// induces the dyadic interval [n/2^L, (n+1)/2^L). The empty BitString induces the
// full unit interval [0, 1).
package bitstring

import (
	"fmt"
	"math/big"

	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/rational"
)

// BitString is an immutable, ordered sequence of bits interpreted as the binary
// fraction 0.b1b2...bL. Append returns a new BitString and never mutates the
// receiver; existing bits are never removed, which is what allows the encoder to
// emit bits incrementally.
//
// The zero value is the empty BitString and is ready to use.
type BitString struct {
	num    big.Int
	length uint
}

// Empty returns the empty BitString.
func Empty() BitString {
	return BitString{}
}

// Parse builds a BitString from a string of '0' and '1' characters.
//
// Parameters:
//   - s: Bit characters, most significant first (may be empty)
//
// Returns:
//   - BitString: Parsed bit sequence
//   - error: Error for any character other than '0' or '1'
func Parse(s string) (BitString, error) {
	bs := BitString{}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bs = bs.Append(0)
		case '1':
			bs = bs.Append(1)
		default:
			return BitString{}, fmt.Errorf("invalid bit character %q at position %d", s[i], i)
		}
	}

	return bs, nil
}

// Append returns a new BitString with the given bit (0 or 1) appended.
// Any non-zero bit value is treated as 1.
func (bs BitString) Append(bit uint) BitString {
	next := BitString{length: bs.length + 1}
	next.num.Lsh(&bs.num, 1)
	if bit != 0 {
		next.num.Or(&next.num, bigOne)
	}

	return next
}

// Len returns the number of bits in the sequence.
func (bs BitString) Len() int {
	return int(bs.length)
}

// Value returns the integer value of the bit sequence read most significant bit
// first. The empty sequence has value 0.
func (bs BitString) Value() *big.Int {
	return new(big.Int).Set(&bs.num)
}

// Dyadic returns the dyadic interval [n/2^L, (n+1)/2^L) induced by this code.
func (bs BitString) Dyadic() rational.Dyadic {
	return rational.NewDyadic(&bs.num, bs.length)
}

// Point returns the exact rational value of the binary fraction 0.bs, the lower
// bound of the dyadic interval. This is the decode target: it lies inside every
// message interval the encoder passed through.
func (bs BitString) Point() *big.Rat {
	return bs.Dyadic().Lo()
}

// String renders the bits as a string of '0' and '1' characters, most significant
// first. The empty BitString renders as "".
func (bs BitString) String() string {
	buf := make([]byte, bs.length)
	for i := uint(0); i < bs.length; i++ {
		if bs.num.Bit(int(bs.length-1-i)) == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf)
}

// Bytes packs the bits into a byte slice, most significant bit first, with the
// final byte zero-padded. The exact bit length must be carried out of band; see
// FromBytes.
func (bs BitString) Bytes() []byte {
	buf := make([]byte, (bs.length+7)/8)
	for i := uint(0); i < bs.length; i++ {
		if bs.num.Bit(int(bs.length-1-i)) == 1 {
			buf[i/8] |= 1 << (7 - i%8)
		}
	}

	return buf
}

// FromBytes rebuilds a BitString from a packed byte slice produced by Bytes.
//
// Parameters:
//   - data: Packed bits, most significant bit first
//   - bitLen: Exact number of bits to read
//
// Returns:
//   - BitString: Rebuilt bit sequence
//   - error: ErrInvalidPayload if data is too short for bitLen, or padding bits are not zero
func FromBytes(data []byte, bitLen int) (BitString, error) {
	if bitLen < 0 || (bitLen+7)/8 > len(data) {
		return BitString{}, fmt.Errorf("%w: %d bytes cannot hold %d bits", errs.ErrInvalidPayload, len(data), bitLen)
	}

	bs := BitString{}
	for i := 0; i < bitLen; i++ {
		bs = bs.Append(uint(data[i/8] >> (7 - i%8) & 1))
	}
	// Reject non-zero padding so a blob has exactly one valid byte form.
	for i := bitLen; i < len(data)*8; i++ {
		if data[i/8]>>(7-i%8)&1 != 0 {
			return BitString{}, fmt.Errorf("%w: non-zero padding bit at position %d", errs.ErrInvalidPayload, i)
		}
	}

	return bs, nil
}

var bigOne = big.NewInt(1)
