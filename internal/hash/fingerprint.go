// Package hash computes the alphabet fingerprint stored in blob headers.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 fingerprint of an alphabet and its prior
// counts. Symbols must be supplied in the alphabet's total order; counts[i] is
// the prior count of symbols[i].
//
// Each entry is hashed as a length-prefixed symbol followed by its count, so the
// fingerprint is unambiguous across symbol boundaries. A decoder whose rebuilt
// model fingerprints differently cannot have the encoder's model.
func Fingerprint(symbols []string, counts []uint64) uint64 {
	var d xxhash.Digest
	d.Reset()

	var buf [8]byte
	for i, sym := range symbols {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(sym)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(sym)
		binary.LittleEndian.PutUint64(buf[:], counts[i])
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
