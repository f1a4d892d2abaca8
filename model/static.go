package model

import (
	"math/big"
	"sort"
)

// Static is a fixed distribution model: the same distribution regardless of
// history. It exists for non-adaptive coding and as the simplest substitute
// for the Model capability.
type Static struct {
	dist *Distribution
}

var _ Model = (*Static)(nil)

// NewStatic creates a fixed model from a symbol-to-probability map. The alphabet
// order is lexicographic, as with Dirichlet.
//
// Parameters:
//   - probs: Strictly positive rationals summing to exactly 1
//
// Returns:
//   - *Static: The model
//   - error: ErrInvalidDistribution on any violated constraint
func NewStatic(probs map[Symbol]*big.Rat) (*Static, error) {
	symbols := make([]Symbol, 0, len(probs))
	for sym := range probs {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	ordered := make([]*big.Rat, len(symbols))
	for i, sym := range symbols {
		ordered[i] = probs[sym]
	}

	dist, err := NewDistribution(symbols, ordered)
	if err != nil {
		return nil, err
	}

	return &Static{dist: dist}, nil
}

// Alphabet returns the model's symbols in lexicographic order.
func (m *Static) Alphabet() []Symbol {
	return m.dist.Symbols()
}

// Distribution returns the fixed distribution; history is ignored.
func (m *Static) Distribution(_ []Symbol) (*Distribution, error) {
	return m.dist, nil
}
