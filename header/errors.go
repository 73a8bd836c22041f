package header

import "errors"

// Sentinel errors for header operations.
var (
	// ErrTagNotFound is returned when a tag is not present in the header.
	ErrTagNotFound = errors.New("header: tag not found")

	// ErrTagKind is returned when a tag is read or appended as the wrong kind.
	ErrTagKind = errors.New("header: tag kind mismatch")

	// ErrInvalidHeader is returned when encoded header data cannot be parsed.
	ErrInvalidHeader = errors.New("header: invalid header data")

	// ErrDecompression is returned when the header payload fails to decompress.
	ErrDecompression = errors.New("header: decompression failed")

	// ErrDigestMismatch is returned when encoded data does not match its digest.
	ErrDigestMismatch = errors.New("header: digest mismatch")
)
