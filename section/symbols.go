package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/arico/errs"
)

// AppendSymbolTable appends the symbol table section to dst and returns the
// extended slice.
//
// Each entry is a varstring (1-byte length prefix followed by the symbol bytes)
// and a uvarint prior count. Entries are written in the alphabet's total order,
// which the decoder verifies on parse.
//
// Parameters:
//   - dst: Destination slice (may be nil)
//   - symbols: Alphabet in strictly ascending lexicographic order
//   - counts: counts[i] is the positive prior count of symbols[i]
//
// Returns:
//   - []byte: dst with the symbol table appended
//   - error: ErrInvalidSymbolTable for oversized symbols or mismatched slices,
//     ErrInvalidPrior for a zero count
func AppendSymbolTable(dst []byte, symbols []string, counts []uint64) ([]byte, error) {
	if len(symbols) != len(counts) {
		return nil, fmt.Errorf("%w: %d symbols but %d counts", errs.ErrInvalidSymbolTable, len(symbols), len(counts))
	}

	for i, sym := range symbols {
		if len(sym) > MaxSymbolLength {
			return nil, fmt.Errorf("%w: symbol length %d exceeds maximum %d", errs.ErrInvalidSymbolTable, len(sym), MaxSymbolLength)
		}
		if counts[i] == 0 {
			return nil, fmt.Errorf("%w: zero count for symbol %q", errs.ErrInvalidPrior, sym)
		}
		dst = append(dst, byte(len(sym)))
		dst = append(dst, sym...)
		dst = binary.AppendUvarint(dst, counts[i])
	}

	return dst, nil
}

// ParseSymbolTable parses count symbol table entries from data.
//
// Parameters:
//   - data: Section bytes starting at the symbol table
//   - count: Number of entries to read (the header's SymbolCount)
//
// Returns:
//   - symbols: Parsed symbols, verified strictly ascending
//   - counts: Parsed prior counts, verified positive
//   - n: Number of bytes consumed
//   - error: ErrInvalidSymbolTable on an impossible entry count, truncation,
//     misordering or malformed varints; ErrInvalidPrior on a zero count
func ParseSymbolTable(data []byte, count int) (symbols []string, counts []uint64, n int, err error) {
	// Each entry occupies at least two bytes (length prefix plus one count
	// byte), so a count the data cannot hold is rejected before any
	// count-sized allocation.
	if count < 0 || count > len(data)/2 {
		return nil, nil, 0, fmt.Errorf("%w: %d entries cannot fit in %d bytes", errs.ErrInvalidSymbolTable, count, len(data))
	}

	symbols = make([]string, 0, count)
	counts = make([]uint64, 0, count)

	for i := 0; i < count; i++ {
		if n >= len(data) {
			return nil, nil, 0, fmt.Errorf("%w: truncated at entry %d", errs.ErrInvalidSymbolTable, i)
		}
		symLen := int(data[n])
		n++
		if n+symLen > len(data) {
			return nil, nil, 0, fmt.Errorf("%w: truncated symbol at entry %d", errs.ErrInvalidSymbolTable, i)
		}
		sym := string(data[n : n+symLen])
		n += symLen

		if i > 0 && symbols[i-1] >= sym {
			return nil, nil, 0, fmt.Errorf("%w: symbols not strictly ordered at entry %d", errs.ErrInvalidSymbolTable, i)
		}

		c, read := binary.Uvarint(data[n:])
		if read <= 0 {
			return nil, nil, 0, fmt.Errorf("%w: malformed count at entry %d", errs.ErrInvalidSymbolTable, i)
		}
		n += read
		if c == 0 {
			return nil, nil, 0, fmt.Errorf("%w: zero count for symbol %q", errs.ErrInvalidPrior, sym)
		}

		symbols = append(symbols, sym)
		counts = append(counts, c)
	}

	return symbols, counts, n, nil
}
