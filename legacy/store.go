package legacy

import "github.com/meigma/filelist/header"

// Store is the tag access needed by the migration code.
//
// Getters return an error wrapping header.ErrTagNotFound for absent tags.
// Any other error is treated as a store failure and returned unchanged
// (wrapped) to the caller.
type Store interface {
	Has(tag header.Tag) bool
	Strings(tag header.Tag) ([]string, error)
	Uint32s(tag header.Tag) ([]uint32, error)
	PutStrings(tag header.Tag, values []string, mode header.PutMode) error
	PutUint32s(tag header.Tag, values []uint32, mode header.PutMode) error
	Delete(tag header.Tag) error

	// IsSource reports whether the store holds a source package header.
	IsSource() bool
}

var _ Store = (*header.Header)(nil)
