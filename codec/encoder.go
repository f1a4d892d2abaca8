package codec

import (
	"fmt"

	"github.com/arloliu/arico/bitstring"
	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/model"
	"github.com/arloliu/arico/rational"
)

// Encoder arithmetically encodes a symbol stream against a probability model.
//
// Symbols are fed in with Write; Finish finalizes and returns the binary code.
// After Finish, or after any Write error, the encoder is dead: every further call
// fails and no partial code is ever produced.
//
// Note: The Encoder is NOT thread-safe. Each instance must be used by a single
// goroutine at a time.
type Encoder struct {
	model    model.Model
	dist     *model.Distribution
	interval rational.Interval
	code     bitstring.BitString
	history  []model.Symbol
	finished bool
	err      error
}

// NewEncoder creates an encoder for the given model, with the message interval at
// [0, 1) and an empty code.
//
// Parameters:
//   - m: Probability model driving the encoding
//
// Returns:
//   - *Encoder: Ready encoder
//   - error: Error from computing the model's initial distribution
func NewEncoder(m model.Model) (*Encoder, error) {
	dist, err := m.Distribution(nil)
	if err != nil {
		return nil, fmt.Errorf("initial distribution: %w", err)
	}

	return &Encoder{
		model:    m,
		dist:     dist,
		interval: rational.Unit(),
		code:     bitstring.Empty(),
	}, nil
}

// Write encodes the given symbols in order.
//
// For each symbol the message interval narrows to the symbol's cumulative
// sub-interval, the code grows to the longest prefix still surrounding the new
// interval, and the model's distribution is recomputed with the symbol appended
// to the history.
//
// Parameters:
//   - symbols: Symbols to encode, in stream order
//
// Returns:
//   - error: ErrEncoderFinished after Finish; ErrUnknownSymbol for a symbol
//     outside the model's alphabet. Any error kills the encoder.
func (e *Encoder) Write(symbols ...model.Symbol) error {
	if err := e.usable(); err != nil {
		return err
	}

	for _, sym := range symbols {
		if err := e.writeOne(sym); err != nil {
			e.err = err
			return err
		}
	}

	return nil
}

func (e *Encoder) writeOne(sym model.Symbol) error {
	flo, fhi, err := e.dist.CDFInterval(sym)
	if err != nil {
		return fmt.Errorf("symbol %d: %w", len(e.history), err)
	}

	narrowed, err := e.interval.Narrow(flo, fhi)
	if err != nil {
		return fmt.Errorf("symbol %d: %w", len(e.history), err)
	}

	e.interval = narrowed
	e.code = bitstring.ExtendAround(e.code, e.interval)
	e.history = append(e.history, sym)

	dist, err := e.model.Distribution(e.history)
	if err != nil {
		return fmt.Errorf("distribution after %d symbols: %w", len(e.history), err)
	}
	e.dist = dist

	return nil
}

// Len returns the number of symbols encoded so far.
func (e *Encoder) Len() int {
	return len(e.history)
}

// Interval returns the current message interval.
func (e *Encoder) Interval() rational.Interval {
	return e.interval
}

// Code returns the code accumulated so far. Before Finish it is the longest
// prefix surrounding the current message interval; bits already returned are
// final and never removed, so callers may emit them incrementally.
func (e *Encoder) Code() bitstring.BitString {
	return e.code
}

// Finish finalizes the encoding and returns the binary code: the shortest
// extension of the accumulated code whose dyadic interval sits inside the upper
// half of the final message interval.
//
// Finish is terminal. A second call, or a call after a Write error, fails with
// the encoder's error.
//
// Returns:
//   - bitstring.BitString: The final binary code
//   - error: ErrEncoderFinished on reuse, or a finalization error
func (e *Encoder) Finish() (bitstring.BitString, error) {
	if err := e.usable(); err != nil {
		return bitstring.Empty(), err
	}

	code, err := bitstring.ExtendInside(e.code, e.interval.UpperHalf())
	if err != nil {
		e.err = err
		return bitstring.Empty(), err
	}

	e.code = code
	e.finished = true

	return e.code, nil
}

func (e *Encoder) usable() error {
	if e.err != nil {
		return e.err
	}
	if e.finished {
		return errs.ErrEncoderFinished
	}

	return nil
}

// Encode arithmetically encodes stream under m in one call.
//
// Parameters:
//   - m: Probability model
//   - stream: Symbols to encode (may be empty; the empty stream still yields a
//     non-empty code, finalized against the upper half of [0, 1))
//
// Returns:
//   - bitstring.BitString: The binary code
//   - error: First error encountered; no partial code is returned
func Encode(m model.Model, stream []model.Symbol) (bitstring.BitString, error) {
	enc, err := NewEncoder(m)
	if err != nil {
		return bitstring.Empty(), err
	}
	if err := enc.Write(stream...); err != nil {
		return bitstring.Empty(), err
	}

	return enc.Finish()
}
