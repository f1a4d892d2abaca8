package section

import (
	"fmt"

	"github.com/arloliu/arico/endian"
	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/format"
)

// Flag represents the packed flag fields at the start of the blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xAC10 (0b1010_1100_0001_0000): arico blob format v1
	Options uint16

	// ModelType is an enum indicating the probability model stored in the
	// symbol table section.
	ModelType uint8

	// CompressionType is an enum indicating the compression applied to the
	// symbol table and code payload.
	CompressionType uint8
}

var validModelTypes = map[uint8]struct{}{
	uint8(format.ModelDirichlet): {},
	uint8(format.ModelStatic):    {},
}

var validCompressionTypes = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a Flag with default settings: little-endian, Dirichlet model,
// no compression.
func NewFlag() Flag {
	return Flag{
		Options:         MagicArithV1Opt,
		ModelType:       uint8(format.ModelDirichlet),
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the blob uses little-endian byte order.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Model returns the model type stored in the flag.
func (f Flag) Model() format.ModelType {
	return format.ModelType(f.ModelType)
}

// SetModel records the model type.
func (f *Flag) SetModel(m format.ModelType) {
	f.ModelType = uint8(m)
}

// Compression returns the compression type stored in the flag.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression records the compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits, and the enum fields.
//
// Returns:
//   - error: ErrInvalidMagicNumber, ErrInvalidModelType or
//     ErrInvalidCompressionType on the first violated constraint
func (f Flag) Validate() error {
	if f.Options&MagicNumberMask != MagicArithV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.Options&MagicNumberMask)
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved flag bits set: 0x%04X", errs.ErrInvalidMagicNumber, f.Options&ReservedBitsMask)
	}
	if _, ok := validModelTypes[f.ModelType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidModelType, f.ModelType)
	}
	if _, ok := validCompressionTypes[f.CompressionType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, f.CompressionType)
	}

	return nil
}
