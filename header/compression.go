package header

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the algorithm applied to an encoded header payload.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

// String returns the human-readable name of the compression algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompression returns the Compression named s.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("header: unknown compression %q", s)
	}
}

func compress(c Compression, payload []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1), zstd.WithLowerEncoderMem(true))
		if err != nil {
			return nil, fmt.Errorf("create zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(payload, make([]byte, 0, len(payload)/2)), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, fmt.Errorf("write lz4 payload: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("close lz4 writer: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("header: unknown compression %d", c)
	}
}

// decompress reverses compress. maxSize bounds the decoded payload; zero
// disables the bound.
func decompress(c Compression, payload []byte, maxSize uint64) ([]byte, error) {
	switch c {
	case CompressionNone:
		if maxSize > 0 && uint64(len(payload)) > maxSize {
			return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrInvalidHeader, maxSize)
		}
		return payload, nil
	case CompressionZstd:
		opts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
		if maxSize > 0 {
			opts = append(opts, zstd.WithDecoderMaxMemory(maxSize))
		}
		dec, err := zstd.NewReader(nil, opts...)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
		}
		return out, nil
	case CompressionLZ4:
		var r io.Reader = lz4.NewReader(bytes.NewReader(payload))
		if maxSize > 0 {
			r = io.LimitReader(r, int64(maxSize)+1) //nolint:gosec // maxSize is a caller-provided bound
		}
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
		}
		if maxSize > 0 && uint64(len(out)) > maxSize {
			return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrDecompression, maxSize)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidHeader, c)
	}
}
