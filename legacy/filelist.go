package legacy

import (
	"fmt"

	"github.com/meigma/filelist"
	"github.com/meigma/filelist/header"
)

// CompressFilelist converts the OldFilenames tag to the compressed
// DirNames, BaseNames and DirIndexes tags.
//
// Headers that already have DirNames only lose their stale OldFilenames
// tag, so repeated calls are no-ops. Headers without a file list are left
// untouched. OldFilenames is deleted only after all three compressed tags
// have been written.
func CompressFilelist(store Store, opts ...Option) error {
	cfg := newConfig(opts)
	return compressFilelist(store, &cfg)
}

func compressFilelist(store Store, cfg *config) error {
	if store.Has(header.TagDirNames) {
		return deleteTag(store, header.TagOldFilenames)
	}
	if !store.Has(header.TagOldFilenames) {
		return nil
	}
	paths, err := store.Strings(header.TagOldFilenames)
	if err != nil {
		return fmt.Errorf("legacy: read %s: %w", header.TagOldFilenames, err)
	}
	if len(paths) == 0 {
		return nil
	}

	source := store.IsSource()
	c := filelist.Compress(paths, source)
	if len(c.Skipped) > 0 {
		if cfg.strictPaths {
			return fmt.Errorf("%w: %q at index %d", filelist.ErrMalformedPath, paths[c.Skipped[0]], c.Skipped[0])
		}
		cfg.log().Warn("dropping malformed file paths", "count", len(c.Skipped), "first_index", c.Skipped[0])
	}

	if err := store.PutUint32s(header.TagDirIndexes, c.DirIndexes, header.Replace); err != nil {
		return fmt.Errorf("legacy: write %s: %w", header.TagDirIndexes, err)
	}
	if err := store.PutStrings(header.TagBaseNames, c.BaseNames, header.Replace); err != nil {
		return fmt.Errorf("legacy: write %s: %w", header.TagBaseNames, err)
	}
	if err := store.PutStrings(header.TagDirNames, c.DirNames, header.Replace); err != nil {
		return fmt.Errorf("legacy: write %s: %w", header.TagDirNames, err)
	}
	cfg.log().Debug("file list compressed",
		"files", c.Len(), "dirs", len(c.DirNames), "source", source)

	return deleteTag(store, header.TagOldFilenames)
}

// ExpandFilelist converts the compressed file list tags back to a flat
// OldFilenames tag and removes the compressed tags.
//
// An existing OldFilenames tag is kept as is. A corrupt compressed list
// fails with filelist.ErrCorruptManifest and leaves the store unchanged.
func ExpandFilelist(store Store, opts ...Option) error {
	cfg := newConfig(opts)

	if !store.Has(header.TagOldFilenames) {
		if !store.Has(header.TagBaseNames) {
			return nil
		}
		paths, err := readFilelist(store)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return nil
		}
		if err := store.PutStrings(header.TagOldFilenames, paths, header.Replace); err != nil {
			return fmt.Errorf("legacy: write %s: %w", header.TagOldFilenames, err)
		}
		cfg.log().Debug("file list expanded", "files", len(paths))
	}

	for _, tag := range []header.Tag{header.TagDirNames, header.TagBaseNames, header.TagDirIndexes} {
		if err := deleteTag(store, tag); err != nil {
			return err
		}
	}
	return nil
}

// Filenames returns the flat file list of a header in either layout.
func Filenames(store Store) ([]string, error) {
	if store.Has(header.TagOldFilenames) {
		paths, err := store.Strings(header.TagOldFilenames)
		if err != nil {
			return nil, fmt.Errorf("legacy: read %s: %w", header.TagOldFilenames, err)
		}
		return paths, nil
	}
	if !store.Has(header.TagBaseNames) {
		return nil, nil
	}
	return readFilelist(store)
}

func readFilelist(store Store) ([]string, error) {
	baseNames, err := store.Strings(header.TagBaseNames)
	if err != nil {
		return nil, fmt.Errorf("legacy: read %s: %w", header.TagBaseNames, err)
	}
	dirNames, err := store.Strings(header.TagDirNames)
	if err != nil {
		return nil, fmt.Errorf("legacy: read %s: %w", header.TagDirNames, err)
	}
	dirIndexes, err := store.Uint32s(header.TagDirIndexes)
	if err != nil {
		return nil, fmt.Errorf("legacy: read %s: %w", header.TagDirIndexes, err)
	}
	return filelist.Expand(dirNames, baseNames, dirIndexes)
}

// deleteTag removes tag if it is present.
func deleteTag(store Store, tag header.Tag) error {
	if !store.Has(tag) {
		return nil
	}
	if err := store.Delete(tag); err != nil {
		return fmt.Errorf("legacy: delete %s: %w", tag, err)
	}
	return nil
}
