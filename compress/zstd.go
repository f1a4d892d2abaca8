package compress

// ZstdCompressor compresses blob sections with Zstandard, the best-ratio codec
// of the supported set. A good fit for archived blobs with large symbol tables.
//
// Two implementations back this type: a cgo build uses valyala/gozstd, while a
// cgo-free build falls back to the pure-Go klauspost/compress/zstd. Both produce
// standard Zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
