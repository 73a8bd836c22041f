package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/filelist/header"
)

// BinaryHeader builds a binary package header for foo-1.0-1 with paths as
// its flat file list. No OldFilenames tag is written when paths is empty.
func BinaryHeader(tb testing.TB, paths ...string) *header.Header {
	tb.Helper()
	h := packageHeader(tb, paths)
	require.NoError(tb, h.PutStrings(header.TagSourceRPM, []string{"foo-1.0-1.src.rpm"}, header.Replace))
	return h
}

// SourceHeader builds a source package header for foo-1.0-1 with paths as
// its flat file list.
func SourceHeader(tb testing.TB, paths ...string) *header.Header {
	tb.Helper()
	return packageHeader(tb, paths)
}

func packageHeader(tb testing.TB, paths []string) *header.Header {
	tb.Helper()
	h := header.New()
	require.NoError(tb, h.PutStrings(header.TagName, []string{"foo"}, header.Replace))
	require.NoError(tb, h.PutStrings(header.TagVersion, []string{"1.0"}, header.Replace))
	require.NoError(tb, h.PutStrings(header.TagRelease, []string{"1"}, header.Replace))
	if len(paths) > 0 {
		require.NoError(tb, h.PutStrings(header.TagOldFilenames, paths, header.Replace))
	}
	return h
}

// AssertCompressed checks the three compressed file list tags of h.
func AssertCompressed(tb testing.TB, h *header.Header, dirNames, baseNames []string, dirIndexes []uint32) {
	tb.Helper()
	gotDirs, err := h.Strings(header.TagDirNames)
	require.NoError(tb, err)
	gotBases, err := h.Strings(header.TagBaseNames)
	require.NoError(tb, err)
	gotIndexes, err := h.Uint32s(header.TagDirIndexes)
	require.NoError(tb, err)

	assert.Equal(tb, dirNames, gotDirs, "DirNames")
	assert.Equal(tb, baseNames, gotBases, "BaseNames")
	assert.Equal(tb, dirIndexes, gotIndexes, "DirIndexes")
}

// AssertSameHeader checks that want and got hold the same tags and values.
func AssertSameHeader(tb testing.TB, want, got *header.Header) {
	tb.Helper()
	require.Equal(tb, want.Tags(), got.Tags(), "tag sets differ")
	for _, tag := range want.Tags() {
		wantKind, _ := want.Kind(tag)
		gotKind, _ := got.Kind(tag)
		require.Equal(tb, wantKind, gotKind, "tag %s kind", tag)
		switch wantKind {
		case header.KindStrings:
			w, err := want.Strings(tag)
			require.NoError(tb, err)
			g, err := got.Strings(tag)
			require.NoError(tb, err)
			assert.Equal(tb, w, g, "tag %s", tag)
		case header.KindUint32s:
			w, err := want.Uint32s(tag)
			require.NoError(tb, err)
			g, err := got.Uint32s(tag)
			require.NoError(tb, err)
			assert.Equal(tb, w, g, "tag %s", tag)
		}
	}
}
