package codec

import (
	"fmt"
	"math/big"

	"github.com/arloliu/arico/bitstring"
	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/model"
	"github.com/arloliu/arico/rational"
)

// Decoder reconstructs a symbol stream from a binary code under the same model
// the encoder used. The code carries no terminator, so the caller supplies the
// message length.
//
// Note: The Decoder is NOT thread-safe and not reusable across codes.
type Decoder struct {
	model    model.Model
	code     bitstring.BitString
	target   *big.Rat
	interval rational.Interval
	history  []model.Symbol
}

// NewDecoder creates a decoder for the given model and binary code.
func NewDecoder(m model.Model, code bitstring.BitString) *Decoder {
	return &Decoder{
		model:    m,
		code:     code,
		target:   code.Point(),
		interval: rational.Unit(),
	}
}

// Next decodes and returns the next symbol.
//
// The decode target 0.code is located within the current distribution's
// cumulative sub-intervals, relative to the current message interval; the
// matching symbol is appended to the history and the interval narrows exactly as
// it did during encoding.
//
// Returns:
//   - model.Symbol: The decoded symbol
//   - error: Model or lookup errors; decoding past the encoded message length
//     yields unspecified symbols, not an error (the length lives outside the code)
func (d *Decoder) Next() (model.Symbol, error) {
	dist, err := d.model.Distribution(d.history)
	if err != nil {
		return "", fmt.Errorf("distribution after %d symbols: %w", len(d.history), err)
	}

	// Rescale the absolute target into [0, 1) relative to the current interval:
	// rel = (target - lo) / (hi - lo).
	rel := new(big.Rat).Sub(d.target, d.interval.Lo())
	rel.Quo(rel, d.interval.Width())

	sym, flo, fhi, err := dist.Locate(rel)
	if err != nil {
		return "", fmt.Errorf("symbol %d: %w", len(d.history), err)
	}

	narrowed, err := d.interval.Narrow(flo, fhi)
	if err != nil {
		return "", fmt.Errorf("symbol %d: %w", len(d.history), err)
	}

	d.interval = narrowed
	d.history = append(d.history, sym)

	return sym, nil
}

// Decode decodes exactly length symbols and verifies the code against the final
// message interval.
//
// Verification checks the encoder's finalization invariant: the code's dyadic
// interval must sit inside the upper half of the final message interval. A
// truncated or mismatched code fails this check instead of silently yielding a
// wrong stream.
//
// Parameters:
//   - length: Number of symbols the code represents
//
// Returns:
//   - []model.Symbol: The decoded stream
//   - error: Decoding errors, or ErrCodeTooShort if the finalization check fails
func (d *Decoder) Decode(length int) ([]model.Symbol, error) {
	out := make([]model.Symbol, 0, length)
	for i := 0; i < length; i++ {
		sym, err := d.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}

	if !d.code.Dyadic().Inside(d.interval.UpperHalf()) {
		return nil, fmt.Errorf("%w: %d bits do not finalize a %d-symbol message", errs.ErrCodeTooShort, d.code.Len(), length)
	}

	return out, nil
}

// Decode reconstructs a stream of length symbols from code under m in one call.
func Decode(m model.Model, code bitstring.BitString, length int) ([]model.Symbol, error) {
	return NewDecoder(m, code).Decode(length)
}
