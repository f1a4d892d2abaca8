// Package rational provides exact interval arithmetic for arithmetic coding.
//
// The message interval [u, v) and dyadic code intervals [n/2^L, (n+1)/2^L) are
// carried as arbitrary-precision rationals (math/big.Rat), so containment tests are
// exact: no rounding error can produce a false containment result, and message
// length is bounded only by available memory rather than machine precision.
package rational

import (
	"fmt"
	"math/big"

	"github.com/arloliu/arico/errs"
)

var (
	ratOne  = big.NewRat(1, 1)
	ratHalf = big.NewRat(1, 2)
)

// Interval represents the half-open real interval [lo, hi) with exact rational
// bounds, constrained to 0 <= lo < hi <= 1.
//
// An Interval is immutable: all operations return a new Interval and never mutate
// the receiver. The zero value is not usable; start from Unit or New.
type Interval struct {
	lo *big.Rat
	hi *big.Rat
}

// Unit returns the full unit interval [0, 1), the initial message interval of an
// encoding session.
func Unit() Interval {
	return Interval{lo: new(big.Rat), hi: new(big.Rat).Set(ratOne)}
}

// New creates the interval [lo, hi).
//
// Parameters:
//   - lo: Lower bound (inclusive)
//   - hi: Upper bound (exclusive)
//
// Returns:
//   - Interval: The interval [lo, hi)
//   - error: ErrEmptyInterval if the bounds do not satisfy 0 <= lo < hi <= 1
func New(lo, hi *big.Rat) (Interval, error) {
	if lo.Sign() < 0 || lo.Cmp(hi) >= 0 || hi.Cmp(ratOne) > 0 {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", errs.ErrEmptyInterval, lo.RatString(), hi.RatString())
	}

	return Interval{lo: new(big.Rat).Set(lo), hi: new(big.Rat).Set(hi)}, nil
}

// Lo returns a copy of the inclusive lower bound.
func (iv Interval) Lo() *big.Rat {
	return new(big.Rat).Set(iv.lo)
}

// Hi returns a copy of the exclusive upper bound.
func (iv Interval) Hi() *big.Rat {
	return new(big.Rat).Set(iv.hi)
}

// Width returns hi - lo. It is strictly positive for any valid Interval.
func (iv Interval) Width() *big.Rat {
	return new(big.Rat).Sub(iv.hi, iv.lo)
}

// Narrow maps the sub-interval [flo, fhi) of [0, 1) into this interval, returning
//
//	[lo + (hi-lo)*flo, lo + (hi-lo)*fhi)
//
// This is the per-symbol interval update of the encoder: flo and fhi are the
// cumulative probability bounds of the symbol being encoded. The result is always
// a subset of the receiver, so the message interval narrows monotonically.
//
// Parameters:
//   - flo: Cumulative probability below the symbol (inclusive)
//   - fhi: Cumulative probability through the symbol (exclusive)
//
// Returns:
//   - Interval: The narrowed interval
//   - error: ErrEmptyInterval if 0 <= flo < fhi <= 1 does not hold
func (iv Interval) Narrow(flo, fhi *big.Rat) (Interval, error) {
	if flo.Sign() < 0 || flo.Cmp(fhi) >= 0 || fhi.Cmp(ratOne) > 0 {
		return Interval{}, fmt.Errorf("%w: cumulative bounds [%s, %s)", errs.ErrEmptyInterval, flo.RatString(), fhi.RatString())
	}

	width := iv.Width()
	lo := new(big.Rat).Mul(width, flo)
	lo.Add(lo, iv.lo)
	hi := new(big.Rat).Mul(width, fhi)
	hi.Add(hi, iv.lo)

	return Interval{lo: lo, hi: hi}, nil
}

// UpperHalf returns [lo + (hi-lo)/2, hi), the top half of the interval.
// The encoder finalizes its code inside this half; a conforming decoder must
// assume the same convention.
func (iv Interval) UpperHalf() Interval {
	mid := iv.Width()
	mid.Mul(mid, ratHalf)
	mid.Add(mid, iv.lo)

	return Interval{lo: mid, hi: new(big.Rat).Set(iv.hi)}
}

// Contains reports whether other is a subset of this interval, i.e. whether
// lo <= other.lo and other.hi <= hi.
func (iv Interval) Contains(other Interval) bool {
	return iv.lo.Cmp(other.lo) <= 0 && other.hi.Cmp(iv.hi) <= 0
}

// Eq reports whether both intervals have identical bounds.
func (iv Interval) Eq(other Interval) bool {
	return iv.lo.Cmp(other.lo) == 0 && iv.hi.Cmp(other.hi) == 0
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.lo.RatString(), iv.hi.RatString())
}
