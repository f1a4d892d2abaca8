package section

import (
	"github.com/arloliu/arico/errs"
)

// Header represents the fixed-size header section at the start of an arico blob.
type Header struct {
	// SymbolCount is the number of symbols in the alphabet.
	SymbolCount uint32 // byte offset 4-7
	// MessageLength is the number of symbols the code payload represents.
	// The binary code carries no terminator, so the decoder needs this.
	MessageLength uint32 // byte offset 8-11
	// CodeBits is the exact number of code bits in the payload; the packed
	// payload is zero-padded to a byte boundary.
	CodeBits uint32 // byte offset 12-15
	// AlphabetHash is the xxHash64 fingerprint of the symbol table. A decoder
	// rejects a blob whose rebuilt model fingerprints differently.
	AlphabetHash uint64 // byte offset 16-23
	// Checksum is the CRC32 (IEEE) of everything after the header, in its
	// stored (possibly compressed) form.
	Checksum uint32 // byte offset 24-27
	// bytes 28-31 are reserved and must be zero

	// Flag is a packed field for options, magic number, model and compression types.
	Flag Flag // byte offset 0-3
}

// NewHeader creates a Header with default flags. Counts, fingerprint and
// checksum are filled in by the blob encoder's Finish.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The flag word itself is always little-endian so the endianness bit can be
	// read before an engine is chosen.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.ModelType = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.SymbolCount = engine.Uint32(data[4:8])
	h.MessageLength = engine.Uint32(data[8:12])
	h.CodeBits = engine.Uint32(data[12:16])
	h.AlphabetHash = engine.Uint64(data[16:24])
	h.Checksum = engine.Uint32(data[24:28])

	for _, b := range data[28:HeaderSize] {
		if b != 0 {
			return errs.ErrInvalidMagicNumber
		}
	}

	return nil
}

// Bytes serializes the Header into a 32-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.ModelType
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.SymbolCount)
	engine.PutUint32(b[8:12], h.MessageLength)
	engine.PutUint32(b[12:16], h.CodeBits)
	engine.PutUint64(b[16:24], h.AlphabetHash)
	engine.PutUint32(b[24:28], h.Checksum)

	return b
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
