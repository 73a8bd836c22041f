package header

import (
	"fmt"
	"maps"
	"slices"
)

// entry is a single tag value. Exactly one of strs and u32s is used,
// selected by kind.
type entry struct {
	kind Kind
	strs []string
	u32s []uint32
}

// Header is an in-memory set of tags.
//
// The zero value is an empty header ready for use. Values returned by the
// getters are copies; callers may modify them freely.
type Header struct {
	tags map[Tag]*entry
}

// New returns an empty header.
func New() *Header {
	return &Header{tags: make(map[Tag]*entry)}
}

// Len returns the number of tags in the header.
func (h *Header) Len() int {
	return len(h.tags)
}

// Tags returns the tags present in the header in ascending order.
func (h *Header) Tags() []Tag {
	return slices.Sorted(maps.Keys(h.tags))
}

// Has reports whether tag is present.
func (h *Header) Has(tag Tag) bool {
	_, ok := h.tags[tag]
	return ok
}

// Kind returns the value kind stored under tag.
func (h *Header) Kind(tag Tag) (Kind, bool) {
	e, ok := h.tags[tag]
	if !ok {
		return 0, false
	}
	return e.kind, true
}

// Strings returns the string array stored under tag.
func (h *Header) Strings(tag Tag) ([]string, error) {
	e, err := h.lookup(tag, KindStrings)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.strs), nil
}

// Uint32s returns the integer array stored under tag.
func (h *Header) Uint32s(tag Tag) ([]uint32, error) {
	e, err := h.lookup(tag, KindUint32s)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.u32s), nil
}

// First returns the first element of a string array tag.
func (h *Header) First(tag Tag) (string, error) {
	vals, err := h.Strings(tag)
	if err != nil {
		return "", err
	}
	if len(vals) == 0 {
		return "", fmt.Errorf("%s: %w", tag, ErrTagNotFound)
	}
	return vals[0], nil
}

// PutStrings stores values under tag.
//
// With Append, values are added after the existing ones; appending to a
// tag of another kind returns ErrTagKind.
func (h *Header) PutStrings(tag Tag, values []string, mode PutMode) error {
	e, err := h.prepare(tag, KindStrings, mode)
	if err != nil {
		return err
	}
	e.strs = append(e.strs, values...)
	return nil
}

// PutUint32s stores values under tag. See PutStrings for mode semantics.
func (h *Header) PutUint32s(tag Tag, values []uint32, mode PutMode) error {
	e, err := h.prepare(tag, KindUint32s, mode)
	if err != nil {
		return err
	}
	e.u32s = append(e.u32s, values...)
	return nil
}

// Delete removes tag. Deleting an absent tag is a no-op.
func (h *Header) Delete(tag Tag) error {
	delete(h.tags, tag)
	return nil
}

// IsSource reports whether the header describes a source package.
// Binary packages always record the source package they were built from;
// source packages do not.
func (h *Header) IsSource() bool {
	return !h.Has(TagSourceRPM)
}

// Clone returns a deep copy of h.
func (h *Header) Clone() *Header {
	c := &Header{tags: make(map[Tag]*entry, len(h.tags))}
	for tag, e := range h.tags {
		c.tags[tag] = &entry{
			kind: e.kind,
			strs: slices.Clone(e.strs),
			u32s: slices.Clone(e.u32s),
		}
	}
	return c
}

func (h *Header) lookup(tag Tag, kind Kind) (*entry, error) {
	e, ok := h.tags[tag]
	if !ok {
		return nil, fmt.Errorf("%s: %w", tag, ErrTagNotFound)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%s: stored as %s, read as %s: %w", tag, e.kind, kind, ErrTagKind)
	}
	return e, nil
}

// prepare returns the entry a put of kind should write into.
func (h *Header) prepare(tag Tag, kind Kind, mode PutMode) (*entry, error) {
	if h.tags == nil {
		h.tags = make(map[Tag]*entry)
	}
	if e, ok := h.tags[tag]; ok && mode == Append {
		if e.kind != kind {
			return nil, fmt.Errorf("%s: stored as %s, appended as %s: %w", tag, e.kind, kind, ErrTagKind)
		}
		return e, nil
	}
	e := &entry{kind: kind}
	h.tags[tag] = e
	return e, nil
}
