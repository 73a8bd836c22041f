package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/filelist/header"
	"github.com/meigma/filelist/internal/testutil"
)

func writeHeader(t *testing.T, dir, name string, h *header.Header) string {
	t.Helper()
	data, err := header.Marshal(h)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMigrateAndExpand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{"/usr/bin/foo", "/usr/share/doc/foo/README", "/usr/bin/foo-helper"}
	bin := writeHeader(t, dir, "foo.hdr", testutil.BinaryHeader(t, paths...))
	src := writeHeader(t, dir, "foo.src.hdr", testutil.SourceHeader(t, "foo.spec"))

	for _, compression := range []string{"none", "zstd", "lz4"} {
		stdout, _, err := runCmd(t, "--compression", compression, "migrate", "--workers", "2", bin, src)
		require.NoError(t, err, "compression %s", compression)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "sha256:"))
		assert.True(t, strings.HasSuffix(lines[0], bin))

		data, err := os.ReadFile(bin)
		require.NoError(t, err)
		assert.Contains(t, lines[0], header.Digest(data).String())

		h, err := header.Unmarshal(data)
		require.NoError(t, err)
		testutil.AssertCompressed(t, h,
			[]string{"/usr/bin/", "/usr/share/doc/foo/"},
			[]string{"foo", "README", "foo-helper"},
			[]uint32{0, 1, 0})

		s, err := loadHeader(src)
		require.NoError(t, err)
		testutil.AssertCompressed(t, s, []string{""}, []string{"foo.spec"}, []uint32{0})
	}

	_, _, err := runCmd(t, "expand", bin)
	require.NoError(t, err)
	h, err := loadHeader(bin)
	require.NoError(t, err)
	got, err := h.Strings(header.TagOldFilenames)
	require.NoError(t, err)
	assert.Equal(t, paths, got)
	assert.False(t, h.Has(header.TagDirNames))
}

func TestMigrateStrict(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeHeader(t, dir, "bad.hdr", testutil.BinaryHeader(t, "/a/x", "bogus"))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, _, err = runCmd(t, "migrate", "--strict", path)
	require.Error(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed migration must not rewrite the file")
}

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeHeader(t, dir, "foo.hdr", testutil.BinaryHeader(t, "/a/x", "/b/y"))

	stdout, _, err := runCmd(t, "inspect", "--files", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "compression: none")
	assert.Contains(t, stdout, "source:      false")
	assert.Contains(t, stdout, "OldFilenames")
	assert.Contains(t, stdout, "/a/x\n/b/y\n")
}

func TestInvalidCompression(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeHeader(t, dir, "foo.hdr", testutil.BinaryHeader(t, "/a/x"))
	_, _, err := runCmd(t, "--compression", "gzip", "migrate", path)
	require.Error(t, err)
}

func TestRewriteKeepsPermissions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeHeader(t, dir, "foo.hdr", testutil.BinaryHeader(t, "/a/x"))
	require.NoError(t, os.Chmod(path, 0o640))

	for _, args := range [][]string{{"migrate", path}, {"expand", path}} {
		_, _, err := runCmd(t, args...)
		require.NoError(t, err, "%s", args[0])

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm(), "%s", args[0])
	}
}
