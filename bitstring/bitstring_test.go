package bitstring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/arico/errs"
)

func TestEmpty(t *testing.T) {
	bs := Empty()
	require.Equal(t, 0, bs.Len())
	require.Equal(t, "", bs.String())
	require.Equal(t, 0, bs.Value().Sign())

	// The empty code induces the full unit interval.
	d := bs.Dyadic()
	require.Equal(t, 0, d.Lo().Sign())
	require.Equal(t, 0, d.Hi().Cmp(big.NewRat(1, 1)))
}

func TestAppend(t *testing.T) {
	bs := Empty().Append(0).Append(1).Append(1).Append(0)
	require.Equal(t, 4, bs.Len())
	require.Equal(t, "0110", bs.String())
	require.Equal(t, int64(6), bs.Value().Int64())

	// Append never mutates the receiver.
	longer := bs.Append(1)
	require.Equal(t, "0110", bs.String())
	require.Equal(t, "01101", longer.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value int64
	}{
		{"empty", "", 0},
		{"single zero", "0", 0},
		{"single one", "1", 1},
		{"leading zeros preserved", "0001", 1},
		{"golden code", "00011110011110010", 15602},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, len(tt.input), bs.Len())
			require.Equal(t, tt.input, bs.String())
			require.Equal(t, tt.value, bs.Value().Int64())
		})
	}

	_, err := Parse("01x")
	require.Error(t, err)
}

func TestPoint(t *testing.T) {
	bs, err := Parse("11")
	require.NoError(t, err)
	require.Equal(t, 0, bs.Point().Cmp(big.NewRat(3, 4)))
}

func TestBytes_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		bits string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"one bit", "1", []byte{0x80}},
		{"exactly one byte", "10110001", []byte{0xB1}},
		{"nine bits", "101100011", []byte{0xB1, 0x80}},
		{"golden code", "00011110011110010", []byte{0x1E, 0x79, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs, err := Parse(tt.bits)
			require.NoError(t, err)
			require.Equal(t, tt.want, bs.Bytes())

			back, err := FromBytes(bs.Bytes(), bs.Len())
			require.NoError(t, err)
			require.Equal(t, tt.bits, back.String())
		})
	}
}

func TestFromBytes_Invalid(t *testing.T) {
	// Too few bytes for the declared bit length.
	_, err := FromBytes([]byte{0xFF}, 9)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	// Non-zero padding bits.
	_, err = FromBytes([]byte{0xFF}, 4)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	// Zero padding is the only accepted byte form.
	bs, err := FromBytes([]byte{0xF0}, 4)
	require.NoError(t, err)
	require.Equal(t, "1111", bs.String())
}
