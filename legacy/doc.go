// Package legacy retrofits old package headers to the current layout.
//
// The main conversion moves a header's file list from the flat
// OldFilenames tag to the compressed DirNames/BaseNames/DirIndexes tags
// (see package filelist). Retrofit also drops misleading legacy tags,
// normalizes the install prefix, and adds the explicit self-provide that
// old binary packages only carried implicitly.
//
// All functions operate through the Store interface. They are synchronous
// and hold no state between calls; concurrent calls on the same Store must
// be serialized by the caller.
package legacy
