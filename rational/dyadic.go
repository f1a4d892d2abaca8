package rational

import (
	"fmt"
	"math/big"
)

// Dyadic represents the dyadic interval [num/2^bits, (num+1)/2^bits) induced by a
// binary code of length bits whose value is num. The empty code (bits=0, num=0)
// induces the full unit interval [0, 1).
type Dyadic struct {
	num  *big.Int
	bits uint
}

// NewDyadic creates the dyadic interval [num/2^bits, (num+1)/2^bits).
// The numerator is copied, so the caller retains ownership of num.
func NewDyadic(num *big.Int, bits uint) Dyadic {
	return Dyadic{num: new(big.Int).Set(num), bits: bits}
}

// Lo returns num/2^bits, the inclusive lower bound, as an exact rational.
func (d Dyadic) Lo() *big.Rat {
	return new(big.Rat).SetFrac(new(big.Int).Set(d.num), denom(d.bits))
}

// Hi returns (num+1)/2^bits, the exclusive upper bound, as an exact rational.
func (d Dyadic) Hi() *big.Rat {
	next := new(big.Int).Add(d.num, intOne)

	return new(big.Rat).SetFrac(next, denom(d.bits))
}

// Bits returns the code length inducing this interval.
func (d Dyadic) Bits() uint {
	return d.bits
}

// Around reports whether this dyadic interval surrounds iv, i.e. whether
// num/2^bits <= iv.lo and iv.hi <= (num+1)/2^bits.
//
// During encoding this is the invariant the binary code maintains against the
// message interval after every symbol.
func (d Dyadic) Around(iv Interval) bool {
	return d.Lo().Cmp(iv.lo) <= 0 && iv.hi.Cmp(d.Hi()) <= 0
}

// Inside reports whether this dyadic interval sits inside iv, i.e. whether
// iv.lo <= num/2^bits and (num+1)/2^bits <= iv.hi.
//
// At finalization the code is extended until its dyadic interval is inside the
// upper half of the final message interval.
func (d Dyadic) Inside(iv Interval) bool {
	return iv.lo.Cmp(d.Lo()) <= 0 && d.Hi().Cmp(iv.hi) <= 0
}

// GapBelow returns iv.lo - num/2^bits, the shortfall between the dyadic lower
// bound and the target's lower bound. Positive when the dyadic interval hangs
// below the target.
func (d Dyadic) GapBelow(iv Interval) *big.Rat {
	return new(big.Rat).Sub(iv.lo, d.Lo())
}

// GapAbove returns (num+1)/2^bits - iv.hi, the shortfall between the dyadic upper
// bound and the target's upper bound. Positive when the dyadic interval overhangs
// the target.
func (d Dyadic) GapAbove(iv Interval) *big.Rat {
	return new(big.Rat).Sub(d.Hi(), iv.hi)
}

func (d Dyadic) String() string {
	return fmt.Sprintf("[%s/2^%d, %s/2^%d)", d.num.String(), d.bits, new(big.Int).Add(d.num, intOne).String(), d.bits)
}

var intOne = big.NewInt(1)

// denom returns 2^bits.
func denom(bits uint) *big.Int {
	return new(big.Int).Lsh(intOne, bits)
}
