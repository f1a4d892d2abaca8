package bitstring

import (
	"fmt"

	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/rational"
)

// ExtendAround returns the longest extension of bs whose dyadic interval still
// surrounds iv. Bits are appended greedily, trying 0 before 1; no existing bit is
// ever removed. When neither extension surrounds iv the current code is returned
// unchanged.
//
// The loop terminates on its own: once the dyadic interval is narrower than iv it
// cannot surround it, and each appended bit halves the dyadic width.
//
// Precondition: bs must already surround iv. The encoder maintains this invariant
// by construction, starting from the empty code over [0, 1).
func ExtendAround(bs BitString, iv rational.Interval) BitString {
	for {
		if zero := bs.Append(0); zero.Dyadic().Around(iv) {
			bs = zero
			continue
		}
		if one := bs.Append(1); one.Dyadic().Around(iv) {
			bs = one
			continue
		}

		return bs
	}
}

// ExtendInside returns the shortest extension of bs whose dyadic interval sits
// inside iv. Each appended bit halves the dyadic interval, choosing the half that
// narrows the larger shortfall: a 1 bit when the gap below iv's lower bound
// strictly exceeds the gap above its upper bound, a 0 bit otherwise.
//
// The encoder calls this once, at finalization, against the upper half of the
// final message interval.
//
// Parameters:
//   - bs: Current code; its dyadic interval must surround or straddle iv
//   - iv: Target interval of strictly positive width
//
// Returns:
//   - BitString: Extended code with Dyadic().Inside(iv) true
//   - error: ErrPrecisionOverflow if the iteration bound is exceeded, which for a
//     valid target of positive width cannot happen
func ExtendInside(bs BitString, iv rational.Interval) (BitString, error) {
	// The dyadic interval fits inside iv once its width 2^-L drops below half of
	// iv's width, so at most denominator-bit-length extra bits are ever needed.
	limit := iv.Width().Denom().BitLen() + 8

	for appended := 0; ; appended++ {
		if bs.Dyadic().Inside(iv) {
			return bs, nil
		}
		if appended > limit {
			return BitString{}, fmt.Errorf("%w: no inside extension within %d bits of %s", errs.ErrPrecisionOverflow, limit, iv)
		}

		d := bs.Dyadic()
		if d.GapBelow(iv).Cmp(d.GapAbove(iv)) > 0 {
			bs = bs.Append(1)
		} else {
			bs = bs.Append(0)
		}
	}
}
