package model

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/arloliu/arico/errs"
)

// Dirichlet is the adaptive frequency model with a Dirichlet-style prior.
//
// Each symbol starts with a positive prior count; every occurrence of a symbol in
// the history adds one to its count; the probability of a symbol is its count
// divided by the total. Counts only increase, so probabilities stay strictly
// positive and the distribution always sums to exactly 1.
//
// The alphabet and its total order (lexicographic) are fixed at construction.
// Dirichlet is stateless across calls: Distribution derives counts from the prior
// and the supplied history alone, so a single instance is safe for concurrent use.
type Dirichlet struct {
	symbols []Symbol
	priors  map[Symbol]uint64
}

var _ Model = (*Dirichlet)(nil)

// NewDirichlet creates an adaptive frequency model from prior counts.
//
// Parameters:
//   - priors: Symbol to positive prior count; every symbol of the working
//     alphabet must have an entry
//
// Returns:
//   - *Dirichlet: The model, with its alphabet fixed in lexicographic order
//   - error: ErrInvalidPrior if the map is empty or any count is zero
func NewDirichlet(priors map[Symbol]uint64) (*Dirichlet, error) {
	if len(priors) == 0 {
		return nil, fmt.Errorf("%w: empty prior map", errs.ErrInvalidPrior)
	}

	symbols := make([]Symbol, 0, len(priors))
	for sym, count := range priors {
		if count == 0 {
			return nil, fmt.Errorf("%w: zero count for symbol %q", errs.ErrInvalidPrior, sym)
		}
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	m := &Dirichlet{
		symbols: symbols,
		priors:  make(map[Symbol]uint64, len(priors)),
	}
	for sym, count := range priors {
		m.priors[sym] = count
	}

	return m, nil
}

// Alphabet returns the model's symbols in lexicographic order.
func (m *Dirichlet) Alphabet() []Symbol {
	out := make([]Symbol, len(m.symbols))
	copy(out, m.symbols)

	return out
}

// Prior returns the prior count of sym.
//
// Returns:
//   - uint64: The prior count
//   - error: ErrUnknownSymbol if sym is not in the alphabet
func (m *Dirichlet) Prior(sym Symbol) (uint64, error) {
	count, ok := m.priors[sym]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, sym)
	}

	return count, nil
}

// Distribution returns count(symbol)/total(counts) for every symbol, where
// counts are the priors plus one per occurrence in history.
//
// Parameters:
//   - history: Symbols already processed, in order (may be nil)
//
// Returns:
//   - *Distribution: Exact rational probabilities over the alphabet
//   - error: ErrUnknownSymbol if history contains a symbol outside the alphabet
func (m *Dirichlet) Distribution(history []Symbol) (*Distribution, error) {
	counts := make(map[Symbol]*big.Int, len(m.symbols))
	total := new(big.Int)
	for _, sym := range m.symbols {
		c := new(big.Int).SetUint64(m.priors[sym])
		counts[sym] = c
		total.Add(total, c)
	}

	for i, sym := range history {
		c, ok := counts[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %q at history position %d", errs.ErrUnknownSymbol, sym, i)
		}
		c.Add(c, intOne)
		total.Add(total, intOne)
	}

	probs := make([]*big.Rat, len(m.symbols))
	for i, sym := range m.symbols {
		probs[i] = new(big.Rat).SetFrac(counts[sym], total)
	}

	return NewDistribution(m.symbols, probs)
}

var intOne = big.NewInt(1)
