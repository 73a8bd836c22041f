package filelist

import "errors"

// Sentinel errors for manifest conversion.
var (
	// ErrMalformedPath is reported for a path that has no "/" separator.
	ErrMalformedPath = errors.New("filelist: malformed path")

	// ErrCorruptManifest is returned when a compressed manifest references a
	// directory outside its directory table or its lists are not aligned.
	ErrCorruptManifest = errors.New("filelist: corrupt compressed manifest")
)
