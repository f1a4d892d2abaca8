package compress

// NoOpCompressor passes data through unchanged. It is the default codec: an
// arithmetic-coded payload is already near entropy and usually incompressible.
//
// Both methods return the input slice as-is, without copying, so the returned
// slice shares memory with the input.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new passthrough compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
