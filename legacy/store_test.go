package legacy

import (
	"errors"

	"github.com/meigma/filelist/header"
)

var errStoreIO = errors.New("store i/o failure")

// faultyStore wraps a header and fails selected operations.
type faultyStore struct {
	*header.Header
	failPut    map[header.Tag]bool
	failGet    map[header.Tag]bool
	failDelete map[header.Tag]bool
	ops        []string
}

func newFaultyStore(h *header.Header) *faultyStore {
	return &faultyStore{
		Header:     h,
		failPut:    make(map[header.Tag]bool),
		failGet:    make(map[header.Tag]bool),
		failDelete: make(map[header.Tag]bool),
	}
}

func (s *faultyStore) Strings(tag header.Tag) ([]string, error) {
	if s.failGet[tag] {
		return nil, errStoreIO
	}
	return s.Header.Strings(tag)
}

func (s *faultyStore) Uint32s(tag header.Tag) ([]uint32, error) {
	if s.failGet[tag] {
		return nil, errStoreIO
	}
	return s.Header.Uint32s(tag)
}

func (s *faultyStore) PutStrings(tag header.Tag, values []string, mode header.PutMode) error {
	s.ops = append(s.ops, "put "+tag.String())
	if s.failPut[tag] {
		return errStoreIO
	}
	return s.Header.PutStrings(tag, values, mode)
}

func (s *faultyStore) PutUint32s(tag header.Tag, values []uint32, mode header.PutMode) error {
	s.ops = append(s.ops, "put "+tag.String())
	if s.failPut[tag] {
		return errStoreIO
	}
	return s.Header.PutUint32s(tag, values, mode)
}

func (s *faultyStore) Delete(tag header.Tag) error {
	s.ops = append(s.ops, "delete "+tag.String())
	if s.failDelete[tag] {
		return errStoreIO
	}
	return s.Header.Delete(tag)
}
