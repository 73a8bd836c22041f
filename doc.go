// Package filelist converts a package file manifest between its flat and
// compressed representations.
//
// A flat manifest stores one absolute path per file. A compressed manifest
// stores the same files as three index-aligned lists:
//   - DirNames: each distinct directory prefix once, in discovery order
//   - BaseNames: the final path element of every file
//   - DirIndexes: the position in DirNames of every file's directory
//
// For every file i, DirNames[DirIndexes[i]] + BaseNames[i] is the original
// path. Sharing the directory strings keeps headers small and makes
// path-based lookups (fingerprinting, conflict checks) cheaper.
//
// The header package provides the tag store that holds these lists, and the
// legacy package migrates old flat headers to the compressed form.
package filelist
