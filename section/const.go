package section

const (
	// Bit masks for the packed flag word
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicArithV1Opt is the version 1 magic number for the arico blob format (bits 4-15).
	MagicArithV1Opt = 0xAC10

	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 32

	// SymbolTableOffset is the byte offset where the symbol table starts.
	SymbolTableOffset = HeaderSize

	// MaxSymbolLength is the maximum byte length of a single symbol in the
	// symbol table (1-byte length prefix).
	MaxSymbolLength = 255
)
