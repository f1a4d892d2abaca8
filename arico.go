// Package arico implements arithmetic coding with exact rational arithmetic:
// a symbol stream is compressed into a binary code whose length approaches the
// information-theoretic entropy of the stream under an adaptive probability
// model.
//
// The encoder narrows a real-valued interval per symbol according to the model's
// cumulative distribution and emits the shortest binary fraction whose dyadic
// interval surrounds the message interval during encoding and finally sits
// inside its upper half. All interval arithmetic is carried as arbitrary
// precision rationals, so message length is bounded only by memory, never by
// machine precision.
//
// # Basic Usage
//
// Encoding and decoding a message through the self-describing blob format:
//
//	import "github.com/arloliu/arico"
//
//	priors := map[string]uint64{"a": 1, "b": 1, "c": 1}
//	data, _ := arico.Encode(priors, []string{"a", "a", "b", "b", "a", "a", "c", "c"})
//
//	stream, _ := arico.Decode(data)
//	fmt.Println(stream) // [a a b b a a c c]
//
// Working with the bare binary code, with no container framing:
//
//	code, _ := arico.EncodeBits(priors, []string{"a", "a", "b", "b", "a", "a", "c", "c"})
//	fmt.Println(code) // 00011110011110010
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob and codec
// packages, simplifying the most common use cases. For fine-grained control use
// the sub-packages directly:
//
//   - codec: the arithmetic encoder/decoder over a probability model
//   - model: Dirichlet (adaptive) and static probability models
//   - blob: the self-describing container format with optional compression
//   - bitstring, rational: the binary code and exact interval arithmetic
package arico

import (
	"github.com/arloliu/arico/bitstring"
	"github.com/arloliu/arico/blob"
	"github.com/arloliu/arico/codec"
	"github.com/arloliu/arico/model"
)

// Encode arithmetically encodes stream under an adaptive Dirichlet model with
// the given prior counts and wraps the result in a self-describing blob.
//
// Parameters:
//   - priors: Symbol to positive prior count; defines the alphabet
//   - stream: Symbols to encode; every symbol must be in the alphabet
//
// Returns:
//   - []byte: Blob decodable with Decode
//   - error: ErrInvalidPrior or ErrUnknownSymbol on bad input
func Encode(priors map[string]uint64, stream []string) ([]byte, error) {
	m, err := model.NewDirichlet(priors)
	if err != nil {
		return nil, err
	}
	enc, err := blob.NewEncoder(m)
	if err != nil {
		return nil, err
	}

	return enc.Encode(stream)
}

// Decode reconstructs the symbol stream from a blob produced by Encode.
//
// Parameters:
//   - data: The complete blob
//
// Returns:
//   - []string: The original symbol stream
//   - error: Validation or decoding errors
func Decode(data []byte) ([]string, error) {
	dec, err := blob.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}

// EncodeBits arithmetically encodes stream under an adaptive Dirichlet model and
// returns the bare binary code, with no framing, length or model attached. The
// consumer must know the model and message length to decode; see DecodeBits.
func EncodeBits(priors map[string]uint64, stream []string) (bitstring.BitString, error) {
	m, err := model.NewDirichlet(priors)
	if err != nil {
		return bitstring.Empty(), err
	}

	return codec.Encode(m, stream)
}

// DecodeBits reconstructs a stream of length symbols from a bare binary code
// under an adaptive Dirichlet model with the given priors.
func DecodeBits(priors map[string]uint64, code bitstring.BitString, length int) ([]string, error) {
	m, err := model.NewDirichlet(priors)
	if err != nil {
		return nil, err
	}

	return codec.Decode(m, code, length)
}
