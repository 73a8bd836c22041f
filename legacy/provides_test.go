package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/filelist/header"
	"github.com/meigma/filelist/internal/testutil"
)

type provides struct {
	names    []string
	flags    []uint32
	versions []string
}

func readProvides(tb testing.TB, h *header.Header) provides {
	tb.Helper()
	var p provides
	var err error
	if h.Has(header.TagProvideName) {
		p.names, err = h.Strings(header.TagProvideName)
		require.NoError(tb, err)
	}
	if h.Has(header.TagProvideFlags) {
		p.flags, err = h.Uint32s(header.TagProvideFlags)
		require.NoError(tb, err)
	}
	if h.Has(header.TagProvideVersion) {
		p.versions, err = h.Strings(header.TagProvideVersion)
		require.NoError(tb, err)
	}
	return p
}

func TestProvidePackageNVR(t *testing.T) {
	t.Parallel()

	t.Run("no provides", func(t *testing.T) {
		t.Parallel()
		h := testutil.BinaryHeader(t)
		require.NoError(t, ProvidePackageNVR(h))
		assert.Equal(t, provides{
			names:    []string{"foo"},
			flags:    []uint32{SenseEqual},
			versions: []string{"1.0-1"},
		}, readProvides(t, h))
	})

	t.Run("with epoch", func(t *testing.T) {
		t.Parallel()
		h := testutil.BinaryHeader(t)
		require.NoError(t, h.PutUint32s(header.TagEpoch, []uint32{2}, header.Replace))
		require.NoError(t, ProvidePackageNVR(h))
		assert.Equal(t, []string{"2:1.0-1"}, readProvides(t, h).versions)
	})

	t.Run("unversioned legacy provides", func(t *testing.T) {
		t.Parallel()
		h := testutil.BinaryHeader(t)
		require.NoError(t, h.PutStrings(header.TagProvideName, []string{"libfoo", "foo-tools"}, header.Replace))
		require.NoError(t, ProvidePackageNVR(h))
		assert.Equal(t, provides{
			names:    []string{"libfoo", "foo-tools", "foo"},
			flags:    []uint32{SenseAny, SenseAny, SenseEqual},
			versions: []string{"", "", "1.0-1"},
		}, readProvides(t, h))
	})

	t.Run("versioned provides without self", func(t *testing.T) {
		t.Parallel()
		h := testutil.BinaryHeader(t)
		require.NoError(t, h.PutStrings(header.TagProvideName, []string{"foo"}, header.Replace))
		require.NoError(t, h.PutUint32s(header.TagProvideFlags, []uint32{SenseEqual}, header.Replace))
		require.NoError(t, h.PutStrings(header.TagProvideVersion, []string{"0.9-1"}, header.Replace))
		require.NoError(t, ProvidePackageNVR(h))
		assert.Equal(t, []string{"0.9-1", "1.0-1"}, readProvides(t, h).versions)
	})

	t.Run("already provided", func(t *testing.T) {
		t.Parallel()
		h := testutil.BinaryHeader(t)
		require.NoError(t, h.PutStrings(header.TagProvideName, []string{"foo"}, header.Replace))
		require.NoError(t, h.PutUint32s(header.TagProvideFlags, []uint32{SenseEqual}, header.Replace))
		require.NoError(t, h.PutStrings(header.TagProvideVersion, []string{"1.0-1"}, header.Replace))
		require.NoError(t, ProvidePackageNVR(h))
		assert.Equal(t, []string{"foo"}, readProvides(t, h).names)
	})

	t.Run("missing release", func(t *testing.T) {
		t.Parallel()
		h := testutil.BinaryHeader(t)
		require.NoError(t, h.Delete(header.TagRelease))
		require.NoError(t, ProvidePackageNVR(h))
		assert.False(t, h.Has(header.TagProvideName))
	})
}

func TestProvidePackageNVRStoreErrors(t *testing.T) {
	t.Parallel()

	s := newFaultyStore(testutil.BinaryHeader(t))
	s.failGet[header.TagName] = true
	require.ErrorIs(t, ProvidePackageNVR(s), errStoreIO)

	s = newFaultyStore(testutil.BinaryHeader(t))
	s.failPut[header.TagProvideFlags] = true
	require.ErrorIs(t, ProvidePackageNVR(s), errStoreIO)
}
