package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/arico/format"
)

func testPayload() []byte {
	// Repetitive enough that every real codec actually shrinks it.
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString("symbol-table-entry-")
		buf.WriteByte(byte('a' + i%26))
	}

	return buf.Bytes()
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := CreateCodec(compression, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)

			if compression != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	corrupt := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02}

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			_, err = codec.Decompress(corrupt)
			require.Error(t, err)
		})
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0x7F), "test")
	require.Error(t, err)

	_, err = GetCodec(format.CompressionType(0x7F))
	require.Error(t, err)
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := testPayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}
