package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	symbols := []string{"a", "b", "c"}
	counts := []uint64{1, 2, 3}

	fp := Fingerprint(symbols, counts)
	assert.NotZero(t, fp)

	// Deterministic.
	assert.Equal(t, fp, Fingerprint([]string{"a", "b", "c"}, []uint64{1, 2, 3}))

	// Sensitive to symbols, counts, and order.
	assert.NotEqual(t, fp, Fingerprint([]string{"a", "b", "d"}, []uint64{1, 2, 3}))
	assert.NotEqual(t, fp, Fingerprint([]string{"a", "b", "c"}, []uint64{1, 2, 4}))
	assert.NotEqual(t, fp, Fingerprint([]string{"a", "c", "b"}, []uint64{1, 3, 2}))
}

func TestFingerprint_SymbolBoundaries(t *testing.T) {
	// Length prefixing keeps differently-split alphabets distinct.
	assert.NotEqual(t,
		Fingerprint([]string{"ab", "c"}, []uint64{1, 1}),
		Fingerprint([]string{"a", "bc"}, []uint64{1, 1}),
	)
	assert.NotEqual(t,
		Fingerprint([]string{"", "a"}, []uint64{1, 1}),
		Fingerprint([]string{"a"}, []uint64{1, 1}),
	)
}
