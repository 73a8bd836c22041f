package legacy

import (
	"fmt"
	"strings"

	"github.com/meigma/filelist/header"
)

// Retrofit brings a legacy header up to the current layout:
//
//  1. FileUIDs and FileGIDs are dropped when the matching user and group
//     name tags exist; nothing reads the numeric ids any more.
//  2. DefaultPrefix is republished as Prefixes without trailing slashes.
//  3. The file list is compressed (see CompressFilelist).
//  4. Source packages get SourcePackage=1; binary packages get an explicit
//     "Provides: name = [epoch:]version-release" (see ProvidePackageNVR).
//
// Retrofit is idempotent.
func Retrofit(store Store, opts ...Option) error {
	cfg := newConfig(opts)
	return retrofit(store, &cfg)
}

func retrofit(store Store, cfg *config) error {
	if store.Has(header.TagFileUserName) {
		if err := deleteTag(store, header.TagFileUIDs); err != nil {
			return err
		}
	}
	if store.Has(header.TagFileGroupName) {
		if err := deleteTag(store, header.TagFileGIDs); err != nil {
			return err
		}
	}

	if err := retrofitPrefixes(store); err != nil {
		return err
	}

	if err := compressFilelist(store, cfg); err != nil {
		return err
	}

	if store.IsSource() {
		if store.Has(header.TagSourcePackage) {
			return nil
		}
		if err := store.PutUint32s(header.TagSourcePackage, []uint32{1}, header.Replace); err != nil {
			return fmt.Errorf("legacy: write %s: %w", header.TagSourcePackage, err)
		}
		return nil
	}
	return ProvidePackageNVR(store)
}

func retrofitPrefixes(store Store) error {
	if !store.Has(header.TagDefaultPrefix) {
		return nil
	}
	vals, err := store.Strings(header.TagDefaultPrefix)
	if err != nil {
		return fmt.Errorf("legacy: read %s: %w", header.TagDefaultPrefix, err)
	}
	if len(vals) == 0 {
		return nil
	}
	prefix := strings.TrimRight(vals[0], "/")
	if err := store.PutStrings(header.TagPrefixes, []string{prefix}, header.Replace); err != nil {
		return fmt.Errorf("legacy: write %s: %w", header.TagPrefixes, err)
	}
	return nil
}
