package model

import (
	"fmt"
	"math/big"

	"github.com/arloliu/arico/errs"
)

// Symbol is an indivisible unit of the message alphabet.
type Symbol = string

// Model maps a symbol history to a probability distribution over the alphabet.
//
// Implementations must be deterministic: the same history always yields the same
// distribution, over the same alphabet in the same total order. The coder calls
// Distribution once per symbol with the history of all preceding symbols.
type Model interface {
	// Alphabet returns the model's symbols in their fixed total order.
	Alphabet() []Symbol

	// Distribution returns the distribution over the alphabet given the symbols
	// already processed, in order. It returns ErrUnknownSymbol if the history
	// contains a symbol outside the alphabet.
	Distribution(history []Symbol) (*Distribution, error)
}

// Distribution holds exact rational probabilities over an ordered alphabet.
// Probabilities are strictly positive and sum to exactly 1.
//
// A Distribution is immutable after construction.
type Distribution struct {
	symbols []Symbol
	probs   []*big.Rat
	index   map[Symbol]int
}

var ratOne = big.NewRat(1, 1)

// NewDistribution creates a distribution assigning probs[i] to symbols[i].
//
// Parameters:
//   - symbols: Alphabet in its declared total order; must be strictly ascending
//     lexicographically and non-empty
//   - probs: One strictly positive rational per symbol, summing to exactly 1
//
// Returns:
//   - *Distribution: The validated distribution
//   - error: ErrInvalidDistribution on any violated constraint
func NewDistribution(symbols []Symbol, probs []*big.Rat) (*Distribution, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", errs.ErrInvalidDistribution)
	}
	if len(symbols) != len(probs) {
		return nil, fmt.Errorf("%w: %d symbols but %d probabilities", errs.ErrInvalidDistribution, len(symbols), len(probs))
	}

	index := make(map[Symbol]int, len(symbols))
	sum := new(big.Rat)
	for i, sym := range symbols {
		if i > 0 && symbols[i-1] >= sym {
			return nil, fmt.Errorf("%w: alphabet not strictly ordered at %q", errs.ErrInvalidDistribution, sym)
		}
		if probs[i] == nil || probs[i].Sign() <= 0 {
			return nil, fmt.Errorf("%w: non-positive probability for %q", errs.ErrInvalidDistribution, sym)
		}
		index[sym] = i
		sum.Add(sum, probs[i])
	}
	if sum.Cmp(ratOne) != 0 {
		return nil, fmt.Errorf("%w: probabilities sum to %s, want 1", errs.ErrInvalidDistribution, sum.RatString())
	}

	d := &Distribution{
		symbols: make([]Symbol, len(symbols)),
		probs:   make([]*big.Rat, len(probs)),
		index:   index,
	}
	copy(d.symbols, symbols)
	for i, p := range probs {
		d.probs[i] = new(big.Rat).Set(p)
	}

	return d, nil
}

// Len returns the alphabet size.
func (d *Distribution) Len() int {
	return len(d.symbols)
}

// Symbols returns a copy of the alphabet in its total order.
func (d *Distribution) Symbols() []Symbol {
	out := make([]Symbol, len(d.symbols))
	copy(out, d.symbols)

	return out
}

// Prob returns the probability of sym.
//
// Returns:
//   - *big.Rat: Probability (a copy, safe to mutate)
//   - error: ErrUnknownSymbol if sym is not in the alphabet
func (d *Distribution) Prob(sym Symbol) (*big.Rat, error) {
	i, ok := d.index[sym]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, sym)
	}

	return new(big.Rat).Set(d.probs[i]), nil
}

// CDFInterval returns the cumulative-probability sub-interval [flo, fhi) of sym:
// flo is the sum of probabilities of all symbols strictly preceding sym in the
// alphabet's total order, and fhi = flo + P(sym).
//
// Parameters:
//   - sym: The symbol to locate
//
// Returns:
//   - flo: Cumulative probability below sym (inclusive bound)
//   - fhi: Cumulative probability through sym (exclusive bound)
//   - error: ErrUnknownSymbol if sym is not in the alphabet
func (d *Distribution) CDFInterval(sym Symbol) (flo, fhi *big.Rat, err error) {
	i, ok := d.index[sym]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, sym)
	}

	flo = new(big.Rat)
	for k := 0; k < i; k++ {
		flo.Add(flo, d.probs[k])
	}
	fhi = new(big.Rat).Add(flo, d.probs[i])

	return flo, fhi, nil
}

// Locate returns the symbol whose cumulative sub-interval contains the point t,
// together with that sub-interval. This is the decoder's per-symbol lookup: the
// sub-intervals partition [0, 1), so any 0 <= t < 1 matches exactly one symbol.
//
// Parameters:
//   - t: A point in [0, 1)
//
// Returns:
//   - sym: The symbol with flo <= t < fhi
//   - flo, fhi: The symbol's cumulative sub-interval
//   - error: ErrUnknownSymbol if t is outside [0, 1)
func (d *Distribution) Locate(t *big.Rat) (sym Symbol, flo, fhi *big.Rat, err error) {
	if t.Sign() < 0 || t.Cmp(ratOne) >= 0 {
		return "", nil, nil, fmt.Errorf("%w: point %s outside [0, 1)", errs.ErrUnknownSymbol, t.RatString())
	}

	flo = new(big.Rat)
	for i, p := range d.probs {
		fhi = new(big.Rat).Add(flo, p)
		if t.Cmp(fhi) < 0 {
			return d.symbols[i], flo, fhi, nil
		}
		flo = fhi
	}

	// Unreachable for a valid distribution: the sub-intervals cover [0, 1).
	return "", nil, nil, fmt.Errorf("%w: point %s not covered", errs.ErrUnknownSymbol, t.RatString())
}
