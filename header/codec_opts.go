package header

// DefaultMaxSize is the decoded payload limit used when no WithMaxSize
// option is set.
const DefaultMaxSize = 64 << 20 // 64MB

type encodeConfig struct {
	compression Compression
}

// EncodeOption configures Marshal.
type EncodeOption func(*encodeConfig)

// WithCompression sets the payload compression (default: CompressionNone).
func WithCompression(c Compression) EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.compression = c
	}
}

type decodeConfig struct {
	maxSize uint64
}

// DecodeOption configures Unmarshal.
type DecodeOption func(*decodeConfig)

// WithMaxSize limits the decoded payload size.
// Set limit to 0 to disable the limit.
func WithMaxSize(limit uint64) DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.maxSize = limit
	}
}
