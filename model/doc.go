// Package model provides probability models for the arithmetic coder.
//
// A Model answers one question: given the ordered history of symbols already
// processed in the current message, what is the distribution over the alphabet
// for the next symbol? The coder is polymorphic over that capability, so adaptive
// models, fixed distributions, or anything else implementing Model can drive it.
//
// Two implementations are provided:
//
//   - Dirichlet: the adaptive frequency model. Counts start from positive prior
//     counts and grow by one per occurrence in the history, so probabilities are
//     always strictly positive and sum to exactly 1.
//   - Static: a fixed distribution that ignores history.
//
// All probabilities are exact rationals. The alphabet's total order is fixed at
// model construction (lexicographic over the symbol strings) and determines where
// in [0, 1) each symbol's cumulative sub-interval falls; encoder and decoder must
// share it exactly.
package model
