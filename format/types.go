package format

type (
	ModelType       uint8
	CompressionType uint8
)

const (
	ModelDirichlet ModelType = 0x1 // ModelDirichlet represents the adaptive frequency model with Dirichlet prior.
	ModelStatic    ModelType = 0x2 // ModelStatic represents a fixed distribution model.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m ModelType) String() string {
	switch m {
	case ModelDirichlet:
		return "Dirichlet"
	case ModelStatic:
		return "Static"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
