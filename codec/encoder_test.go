package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/arico/errs"
	"github.com/arloliu/arico/model"
)

func dirichletModel(t *testing.T, priors map[string]uint64) *model.Dirichlet {
	t.Helper()
	m, err := model.NewDirichlet(priors)
	require.NoError(t, err)

	return m
}

func symbols(s string) []model.Symbol {
	out := make([]model.Symbol, len(s))
	for i := range s {
		out[i] = string(s[i])
	}

	return out
}

func TestEncode_Golden(t *testing.T) {
	tests := []struct {
		name   string
		priors map[string]uint64
		stream string
		want   string
	}{
		{
			// The reference example: uniform unit priors over {a,b,c}.
			name:   "aabbaacc with unit priors",
			priors: map[string]uint64{"a": 1, "b": 1, "c": 1},
			stream: "aabbaacc",
			want:   "00011110011110010",
		},
		{
			// The empty stream still finalizes into the upper half of [0, 1).
			name:   "empty stream",
			priors: map[string]uint64{"a": 1, "b": 1, "c": 1},
			stream: "",
			want:   "1",
		},
		{
			// A single-symbol alphabet never narrows the interval; only the
			// finalization bit is emitted.
			name:   "single-symbol alphabet",
			priors: map[string]uint64{"a": 1},
			stream: "aaaa",
			want:   "1",
		},
		{
			name:   "skewed priors",
			priors: map[string]uint64{"a": 2, "b": 1},
			stream: "abba",
			want:   "1001111",
		},
		{
			name:   "three-symbol alphabet",
			priors: map[string]uint64{"a": 1, "b": 1, "n": 1},
			stream: "banana",
			want:   "011001111000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Encode(dirichletModel(t, tt.priors), symbols(tt.stream))
			require.NoError(t, err)
			require.Equal(t, tt.want, code.String())
		})
	}
}

func TestEncode_StaticModel(t *testing.T) {
	m, err := model.NewStatic(map[model.Symbol]*big.Rat{
		"a": big.NewRat(1, 2),
		"b": big.NewRat(1, 4),
		"c": big.NewRat(1, 4),
	})
	require.NoError(t, err)

	code, err := Encode(m, symbols("cab"))
	require.NoError(t, err)
	require.Equal(t, "110101", code.String())
}

func TestEncoder_Streaming(t *testing.T) {
	// Feeding symbols one at a time matches the one-shot result bit for bit.
	m := dirichletModel(t, map[string]uint64{"a": 1, "b": 1, "c": 1})

	enc, err := NewEncoder(m)
	require.NoError(t, err)
	for _, sym := range symbols("aabbaacc") {
		require.NoError(t, enc.Write(sym))
	}
	require.Equal(t, 8, enc.Len())

	code, err := enc.Finish()
	require.NoError(t, err)
	require.Equal(t, "00011110011110010", code.String())
}

func TestEncoder_MonotonicNarrowing(t *testing.T) {
	m := dirichletModel(t, map[string]uint64{"a": 1, "b": 1, "c": 1})
	enc, err := NewEncoder(m)
	require.NoError(t, err)

	prev := enc.Interval()
	for _, sym := range symbols("abcabcba") {
		require.NoError(t, enc.Write(sym))
		cur := enc.Interval()

		// Each new interval is a strict subset of the previous one.
		require.True(t, prev.Contains(cur))
		require.False(t, cur.Eq(prev))
		require.Positive(t, cur.Width().Sign())
		prev = cur
	}
}

func TestEncoder_CodeSurroundsInterval(t *testing.T) {
	m := dirichletModel(t, map[string]uint64{"a": 3, "b": 2, "c": 1})
	enc, err := NewEncoder(m)
	require.NoError(t, err)

	for _, sym := range symbols("cabbacab") {
		require.NoError(t, enc.Write(sym))

		// After every symbol the code's dyadic interval surrounds the message
		// interval.
		require.True(t, enc.Code().Dyadic().Around(enc.Interval()))
	}

	final := enc.Interval()
	code, err := enc.Finish()
	require.NoError(t, err)

	// After finalization the code sits inside the upper half of the final
	// message interval.
	require.True(t, code.Dyadic().Inside(final.UpperHalf()))
}

func TestEncoder_BitsNeverRemoved(t *testing.T) {
	m := dirichletModel(t, map[string]uint64{"a": 1, "b": 1})
	enc, err := NewEncoder(m)
	require.NoError(t, err)

	emitted := ""
	for _, sym := range symbols("abababba") {
		require.NoError(t, enc.Write(sym))
		cur := enc.Code().String()
		require.True(t, len(cur) >= len(emitted))
		require.Equal(t, emitted, cur[:len(emitted)])
		emitted = cur
	}

	code, err := enc.Finish()
	require.NoError(t, err)
	require.Equal(t, emitted, code.String()[:len(emitted)])
}

func TestEncode_Deterministic(t *testing.T) {
	priors := map[string]uint64{"a": 1, "b": 2, "c": 3}
	stream := symbols("cbacbacba")

	first, err := Encode(dirichletModel(t, priors), stream)
	require.NoError(t, err)
	second, err := Encode(dirichletModel(t, priors), stream)
	require.NoError(t, err)

	require.Equal(t, first.String(), second.String())
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	m := dirichletModel(t, map[string]uint64{"a": 1, "b": 1})
	enc, err := NewEncoder(m)
	require.NoError(t, err)

	require.NoError(t, enc.Write("a"))
	err = enc.Write("z")
	require.ErrorIs(t, err, errs.ErrUnknownSymbol)

	// The error is fatal for this encoding session.
	require.ErrorIs(t, enc.Write("a"), errs.ErrUnknownSymbol)
	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrUnknownSymbol)
}

func TestEncoder_FinishIsTerminal(t *testing.T) {
	m := dirichletModel(t, map[string]uint64{"a": 1, "b": 1})
	enc, err := NewEncoder(m)
	require.NoError(t, err)
	require.NoError(t, enc.Write("a", "b"))

	_, err = enc.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, enc.Write("a"), errs.ErrEncoderFinished)
	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestEncode_OneShotUnknownSymbol(t *testing.T) {
	_, err := Encode(dirichletModel(t, map[string]uint64{"a": 1}), symbols("ab"))
	require.ErrorIs(t, err, errs.ErrUnknownSymbol)
}
