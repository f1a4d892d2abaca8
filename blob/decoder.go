package blob

import (
	"fmt"
	"hash/crc32"

	"github.com/arloliu/arico/bitstring"
	"github.com/arloliu/arico/codec"
	"github.com/arloliu/arico/compress"
	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/format"
	"github.com/arloliu/arico/internal/hash"
	"github.com/arloliu/arico/model"
	"github.com/arloliu/arico/section"
)

// Decoder parses an arico blob and reconstructs the encoded symbol stream.
//
// NewDecoder validates the header, checksum and alphabet fingerprint and
// rebuilds the model from the symbol table; Decode then replays the arithmetic
// decoding. A Decoder is bound to one blob and is NOT thread-safe.
type Decoder struct {
	header  section.Header
	symbols []model.Symbol
	counts  []uint64
	code    bitstring.BitString
	mdl     model.Model
}

// NewDecoder parses and validates a blob.
//
// Parameters:
//   - data: The complete blob as produced by Encoder.Encode
//
// Returns:
//   - *Decoder: Decoder ready to decode the message
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrChecksumMismatch,
//     ErrInvalidSymbolTable, ErrAlphabetMismatch or ErrInvalidPayload depending
//     on what is malformed
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[section.HeaderSize:]
	if sum := crc32.ChecksumIEEE(stored); sum != header.Checksum {
		return nil, fmt.Errorf("%w: computed 0x%08X, header 0x%08X", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	cdc, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	body, err := cdc.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPayload, err)
	}

	symbols, counts, n, err := section.ParseSymbolTable(body, int(header.SymbolCount))
	if err != nil {
		return nil, err
	}
	if fp := hash.Fingerprint(symbols, counts); fp != header.AlphabetHash {
		return nil, fmt.Errorf("%w: computed 0x%016X, header 0x%016X", errs.ErrAlphabetMismatch, fp, header.AlphabetHash)
	}

	payload := body[n:]
	if want := (int(header.CodeBits) + 7) / 8; len(payload) != want {
		return nil, fmt.Errorf("%w: %d payload bytes for %d code bits", errs.ErrInvalidPayload, len(payload), header.CodeBits)
	}
	code, err := bitstring.FromBytes(payload, int(header.CodeBits))
	if err != nil {
		return nil, err
	}

	mdl, err := buildModel(header.Flag.Model(), symbols, counts)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		header:  header,
		symbols: symbols,
		counts:  counts,
		code:    code,
		mdl:     mdl,
	}, nil
}

// buildModel rebuilds the coding model declared by the header from the symbol
// table entries.
func buildModel(modelType format.ModelType, symbols []model.Symbol, counts []uint64) (model.Model, error) {
	table := make(map[model.Symbol]uint64, len(symbols))
	for i, sym := range symbols {
		table[sym] = counts[i]
	}

	switch modelType {
	case format.ModelDirichlet:
		return model.NewDirichlet(table)
	case format.ModelStatic:
		m, _, _, err := staticFromWeights(table)
		return m, err
	default:
		return nil, fmt.Errorf("%w: 0x%02X", errs.ErrInvalidModelType, uint8(modelType))
	}
}

// Header returns the parsed blob header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Model returns the model rebuilt from the symbol table.
func (d *Decoder) Model() model.Model {
	return d.mdl
}

// Code returns the binary code carried by the blob.
func (d *Decoder) Code() bitstring.BitString {
	return d.code
}

// Decode reconstructs the encoded symbol stream.
//
// Returns:
//   - []model.Symbol: The original stream, of the header's MessageLength
//   - error: Decoding errors, including ErrCodeTooShort if the code does not
//     finalize a message of the declared length
func (d *Decoder) Decode() ([]model.Symbol, error) {
	return codec.Decode(d.mdl, d.code, int(d.header.MessageLength))
}
