// Package errs defines the sentinel errors shared across arico packages.
//
// All errors are created with errors.New and wrapped at call sites with
// fmt.Errorf("%w: ...") so callers can discriminate error kinds with errors.Is
// while still receiving contextual detail.
package errs

import "errors"

// Model and distribution errors.
var (
	// ErrUnknownSymbol indicates a symbol that is not part of the model's alphabet,
	// either in an input stream or in a distribution lookup.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidPrior indicates a prior count map with a non-positive count,
	// an empty alphabet, or a symbol missing from the required alphabet.
	ErrInvalidPrior = errors.New("invalid prior count")

	// ErrInvalidDistribution indicates a distribution whose probabilities are
	// non-positive or do not sum to exactly 1.
	ErrInvalidDistribution = errors.New("invalid distribution")
)

// Coder errors.
var (
	// ErrPrecisionOverflow indicates the code extension loop exceeded its
	// iteration bound, or a configured precision limit would be violated.
	ErrPrecisionOverflow = errors.New("precision overflow")

	// ErrEmptyInterval indicates an interval of zero or negative width where a
	// non-empty interval is required.
	ErrEmptyInterval = errors.New("empty interval")

	// ErrEncoderFinished indicates a write on an encoder after Finish was called.
	ErrEncoderFinished = errors.New("encoder already finished")

	// ErrCodeTooShort indicates a binary code whose dyadic interval is too wide
	// to identify the requested number of symbols during decoding.
	ErrCodeTooShort = errors.New("binary code too short")
)

// Container format errors.
var (
	// ErrInvalidHeaderSize indicates header data that is not the expected fixed size.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates a flag word whose magic bits do not match
	// the arico container format.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidModelType indicates an unrecognized model type in the header.
	ErrInvalidModelType = errors.New("invalid model type")

	// ErrInvalidCompressionType indicates an unrecognized compression type in the header.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidSymbolTable indicates a symbol table section that is truncated,
	// misordered, or otherwise malformed.
	ErrInvalidSymbolTable = errors.New("invalid symbol table")

	// ErrChecksumMismatch indicates a payload whose checksum does not match the header.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrAlphabetMismatch indicates a decoder model whose alphabet fingerprint
	// does not match the fingerprint recorded in the blob header.
	ErrAlphabetMismatch = errors.New("alphabet fingerprint mismatch")

	// ErrInvalidPayload indicates a payload section that is truncated or whose
	// bit length disagrees with the header.
	ErrInvalidPayload = errors.New("invalid payload")
)
