package blob

import (
	"fmt"
	"hash/crc32"
	"math"
	"math/big"

	"github.com/arloliu/arico/codec"
	"github.com/arloliu/arico/compress"
	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/format"
	"github.com/arloliu/arico/internal/hash"
	"github.com/arloliu/arico/internal/options"
	"github.com/arloliu/arico/model"
	"github.com/arloliu/arico/section"
)

// Encoder encodes symbol streams into self-describing arico blobs.
//
// An Encoder is bound to one model and one set of format options; Encode may be
// called repeatedly for independent messages. Each call is self-contained, but
// the Encoder itself is NOT thread-safe.
type Encoder struct {
	mdl       model.Model
	modelType format.ModelType
	symbols   []model.Symbol
	counts    []uint64
	flag      section.Flag
	codec     compress.Codec
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the compression applied to the symbol table and code
// payload. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		c, err := compress.CreateCodec(compression, "blob")
		if err != nil {
			return err
		}
		e.codec = c
		e.flag.SetCompression(compression)

		return nil
	})
}

// WithLittleEndian sets little-endian header byte order, the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian header byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithBigEndian()
	})
}

// NewEncoder creates a blob encoder around an adaptive Dirichlet model.
//
// Parameters:
//   - m: The model; its alphabet and prior counts become the blob's symbol table
//   - opts: Format options (compression, endianness)
//
// Returns:
//   - *Encoder: Ready encoder
//   - error: Option errors, or ErrInvalidSymbolTable if a symbol cannot be
//     stored in the table
func NewEncoder(m *model.Dirichlet, opts ...EncoderOption) (*Encoder, error) {
	symbols := m.Alphabet()
	counts := make([]uint64, len(symbols))
	for i, sym := range symbols {
		c, err := m.Prior(sym)
		if err != nil {
			return nil, err
		}
		counts[i] = c
	}

	return newEncoder(m, format.ModelDirichlet, symbols, counts, opts)
}

// NewStaticEncoder creates a blob encoder around a fixed distribution given as
// integer weights: symbol probabilities are weight/total and do not adapt to the
// message. The weights are stored in the blob's symbol table exactly like prior
// counts, distinguished by the header's model type.
//
// Parameters:
//   - weights: Symbol to positive weight; probabilities are weight/total
//   - opts: Format options (compression, endianness)
//
// Returns:
//   - *Encoder: Ready encoder
//   - error: ErrInvalidPrior for empty or zero weights, plus option errors
func NewStaticEncoder(weights map[model.Symbol]uint64, opts ...EncoderOption) (*Encoder, error) {
	m, symbols, counts, err := staticFromWeights(weights)
	if err != nil {
		return nil, err
	}

	return newEncoder(m, format.ModelStatic, symbols, counts, opts)
}

func newEncoder(m model.Model, modelType format.ModelType, symbols []model.Symbol, counts []uint64, opts []EncoderOption) (*Encoder, error) {
	e := &Encoder{
		mdl:       m,
		modelType: modelType,
		symbols:   symbols,
		counts:    counts,
		flag:      section.NewFlag(),
		codec:     compress.NewNoOpCompressor(),
	}
	e.flag.SetModel(modelType)

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	for _, sym := range symbols {
		if len(sym) > section.MaxSymbolLength {
			return nil, fmt.Errorf("%w: symbol length %d exceeds maximum %d", errs.ErrInvalidSymbolTable, len(sym), section.MaxSymbolLength)
		}
	}

	return e, nil
}

// staticFromWeights builds the fixed model backing a static blob. Weights are
// normalized by their total, so they round-trip through the symbol table as-is.
func staticFromWeights(weights map[model.Symbol]uint64) (*model.Static, []model.Symbol, []uint64, error) {
	if len(weights) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: empty weight map", errs.ErrInvalidPrior)
	}

	total := new(big.Int)
	for sym, w := range weights {
		if w == 0 {
			return nil, nil, nil, fmt.Errorf("%w: zero weight for symbol %q", errs.ErrInvalidPrior, sym)
		}
		total.Add(total, new(big.Int).SetUint64(w))
	}

	probs := make(map[model.Symbol]*big.Rat, len(weights))
	for sym, w := range weights {
		probs[sym] = new(big.Rat).SetFrac(new(big.Int).SetUint64(w), total)
	}

	m, err := model.NewStatic(probs)
	if err != nil {
		return nil, nil, nil, err
	}

	symbols := m.Alphabet()
	counts := make([]uint64, len(symbols))
	for i, sym := range symbols {
		counts[i] = weights[sym]
	}

	return m, symbols, counts, nil
}

// Encode arithmetically encodes stream and wraps the result in a blob.
//
// Parameters:
//   - stream: Symbols to encode (may be empty)
//
// Returns:
//   - []byte: The complete blob (header, symbol table, code payload)
//   - error: Coding errors (ErrUnknownSymbol, ...) or ErrPrecisionOverflow if a
//     count no longer fits the header's 32-bit fields
func (e *Encoder) Encode(stream []model.Symbol) ([]byte, error) {
	if uint64(len(stream)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: message length %d exceeds header capacity", errs.ErrPrecisionOverflow, len(stream))
	}

	code, err := codec.Encode(e.mdl, stream)
	if err != nil {
		return nil, err
	}
	if uint64(code.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: code length %d bits exceeds header capacity", errs.ErrPrecisionOverflow, code.Len())
	}

	body, err := section.AppendSymbolTable(nil, e.symbols, e.counts)
	if err != nil {
		return nil, err
	}
	body = append(body, code.Bytes()...)

	stored, err := e.codec.Compress(body)
	if err != nil {
		return nil, fmt.Errorf("compress blob body: %w", err)
	}

	header := section.NewHeader()
	header.Flag = e.flag
	header.SymbolCount = uint32(len(e.symbols))
	header.MessageLength = uint32(len(stream))
	header.CodeBits = uint32(code.Len())
	header.AlphabetHash = hash.Fingerprint(e.symbols, e.counts)
	header.Checksum = crc32.ChecksumIEEE(stored)

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = append(out, header.Bytes()...)
	out = append(out, stored...)

	return out, nil
}
