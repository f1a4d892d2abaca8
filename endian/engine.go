// Package endian provides byte order utilities for the arico container format.
//
// It combines the standard library's binary.ByteOrder and binary.AppendByteOrder
// interfaces into a single EndianEngine, so header serialization code can both
// read fixed offsets and append fields without juggling two interface values.
//
// Container headers default to little-endian; the endianness bit in the header
// flag word records which engine wrote a blob.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface for byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it. The returned engines
// are immutable and stateless, so they are safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the arico default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
