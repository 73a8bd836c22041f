//go:generate flatc --go --go-namespace fb -o internal schema/header.fbs

// Package header implements an in-memory package header: a set of typed,
// array-valued tags addressed by numeric tag identifiers.
//
// A Header is the tag store consumed by the legacy migration code. It can be
// serialized to a compact wire form:
//   - 1 byte: payload compression (none, zstd, lz4)
//   - payload: FlatBuffers-encoded tag table, sorted by tag
//
// Header values are not safe for concurrent mutation; callers serialize
// access to a single header.
package header
