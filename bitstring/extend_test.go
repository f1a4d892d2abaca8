package bitstring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/arico/rational"
)

func mustInterval(t *testing.T, loN, loD, hiN, hiD int64) rational.Interval {
	t.Helper()
	iv, err := rational.New(big.NewRat(loN, loD), big.NewRat(hiN, hiD))
	require.NoError(t, err)

	return iv
}

func TestExtendAround(t *testing.T) {
	tests := []struct {
		name               string
		start              string
		loN, loD, hiN, hiD int64
		want               string
	}{
		// [0, 1/3): both [0, 1/2) and then [0, 1/4) still surround it.
		{"first symbol of golden stream", "", 0, 1, 1, 3, "0"},
		// [0, 1/6): one more zero bit reaches [0, 1/8), which no longer surrounds.
		{"second symbol of golden stream", "0", 0, 1, 1, 6, "00"},
		// [1/10, 2/15) straddles 1/8, so no extension of "00" surrounds it.
		{"straddling interval", "00", 1, 10, 2, 15, "00"},
		// [7/60, 17/140) fits into [7/64, 8/64) = "000111".
		{"multi-bit extension", "00", 7, 60, 17, 140, "000111"},
		// The full unit interval admits no extension at all.
		{"full interval", "", 0, 1, 1, 1, ""},
		// [1/2, 1) is exactly the dyadic interval of "1".
		{"upper half interval", "", 1, 2, 1, 1, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := Parse(tt.start)
			require.NoError(t, err)
			iv := mustInterval(t, tt.loN, tt.loD, tt.hiN, tt.hiD)

			got := ExtendAround(start, iv)
			require.Equal(t, tt.want, got.String())

			// The result surrounds the target and is maximal: neither
			// one-bit extension surrounds it.
			require.True(t, got.Dyadic().Around(iv))
			require.False(t, got.Append(0).Dyadic().Around(iv))
			require.False(t, got.Append(1).Dyadic().Around(iv))
		})
	}
}

func TestExtendAround_NeverRemovesBits(t *testing.T) {
	start, err := Parse("00")
	require.NoError(t, err)
	iv := mustInterval(t, 7, 60, 17, 140)

	got := ExtendAround(start, iv)
	require.GreaterOrEqual(t, got.Len(), start.Len())
	require.Equal(t, "00", got.String()[:2])
}

func TestExtendInside(t *testing.T) {
	tests := []struct {
		name               string
		start              string
		loN, loD, hiN, hiD int64
		want               string
	}{
		// Finalization of the empty message: inside [1/2, 1) is "1".
		{"upper half of unit", "", 1, 2, 1, 1, "1"},
		// Finalization of the golden stream: the final interval is
		// [2249/18900, 5/42) and its upper half [4499/37800, 5/42); extending
		// "000111100111" inside it yields the documented tail "10010".
		{"golden finalization", "000111100111", 4499, 37800, 5, 42, "00011110011110010"},
		// Already inside: returned unchanged.
		{"already inside", "11", 1, 2, 1, 1, "11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := Parse(tt.start)
			require.NoError(t, err)
			iv := mustInterval(t, tt.loN, tt.loD, tt.hiN, tt.hiD)

			got, err := ExtendInside(start, iv)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
			require.True(t, got.Dyadic().Inside(iv))
		})
	}
}

func TestExtendInside_Shortest(t *testing.T) {
	// The extension is minimal: dropping its last bit is not inside.
	iv := mustInterval(t, 1, 3, 2, 5)
	got, err := ExtendInside(Empty(), iv)
	require.NoError(t, err)
	require.True(t, got.Dyadic().Inside(iv))
	require.Greater(t, got.Len(), 0)

	parent, err := Parse(got.String()[:got.Len()-1])
	require.NoError(t, err)
	require.False(t, parent.Dyadic().Inside(iv))
}
