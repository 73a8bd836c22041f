package legacy

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/meigma/filelist/header"
)

// Dependency sense flags stored in ProvideFlags.
const (
	SenseAny     uint32 = 0
	SenseLess    uint32 = 1 << 1
	SenseGreater uint32 = 1 << 2
	SenseEqual   uint32 = 1 << 3

	senseCompareMask = SenseLess | SenseGreater | SenseEqual
)

// ProvidePackageNVR adds "Provides: name = [epoch:]version-release" to a
// binary package header unless an identical provide is already present.
//
// Very old packages carry provide names without versions. Those get an
// empty version and SenseAny for every existing name so the three provide
// tags stay index-aligned, and then the package's own provide is appended.
//
// Headers without a name, version or release are left unchanged.
func ProvidePackageNVR(store Store) error {
	name, evr, ok, err := packageEVR(store)
	if err != nil || !ok {
		return err
	}

	switch {
	case !store.Has(header.TagProvideName):
	case !store.Has(header.TagProvideVersion):
		names, err := store.Strings(header.TagProvideName)
		if err != nil {
			return fmt.Errorf("legacy: read %s: %w", header.TagProvideName, err)
		}
		for range names {
			if err := appendProvideVersion(store, "", SenseAny); err != nil {
				return err
			}
		}
	default:
		found, err := hasProvide(store, name, evr)
		if err != nil || found {
			return err
		}
	}

	if err := store.PutStrings(header.TagProvideName, []string{name}, header.Append); err != nil {
		return fmt.Errorf("legacy: write %s: %w", header.TagProvideName, err)
	}
	return appendProvideVersion(store, evr, SenseEqual)
}

func appendProvideVersion(store Store, version string, flags uint32) error {
	if err := store.PutUint32s(header.TagProvideFlags, []uint32{flags}, header.Append); err != nil {
		return fmt.Errorf("legacy: write %s: %w", header.TagProvideFlags, err)
	}
	if err := store.PutStrings(header.TagProvideVersion, []string{version}, header.Append); err != nil {
		return fmt.Errorf("legacy: write %s: %w", header.TagProvideVersion, err)
	}
	return nil
}

// hasProvide reports whether the header already provides name = evr.
func hasProvide(store Store, name, evr string) (bool, error) {
	names, err := store.Strings(header.TagProvideName)
	if err != nil {
		return false, fmt.Errorf("legacy: read %s: %w", header.TagProvideName, err)
	}
	versions, err := store.Strings(header.TagProvideVersion)
	if err != nil {
		return false, fmt.Errorf("legacy: read %s: %w", header.TagProvideVersion, err)
	}
	flags, err := optionalUint32s(store, header.TagProvideFlags)
	if err != nil {
		return false, err
	}

	for i, n := range names {
		if n != name || i >= len(versions) || i >= len(flags) {
			continue
		}
		if versions[i] == evr && flags[i]&senseCompareMask == SenseEqual {
			return true, nil
		}
	}
	return false, nil
}

// packageEVR returns the package name and its "[epoch:]version-release".
// ok is false when any of name, version or release is missing.
func packageEVR(store Store) (name, evr string, ok bool, err error) {
	var fields [3]string
	for i, tag := range []header.Tag{header.TagName, header.TagVersion, header.TagRelease} {
		if !store.Has(tag) {
			return "", "", false, nil
		}
		vals, err := store.Strings(tag)
		if err != nil {
			return "", "", false, fmt.Errorf("legacy: read %s: %w", tag, err)
		}
		if len(vals) == 0 {
			return "", "", false, nil
		}
		fields[i] = vals[0]
	}

	evr = fields[1] + "-" + fields[2]
	epochs, err := optionalUint32s(store, header.TagEpoch)
	if err != nil {
		return "", "", false, err
	}
	if len(epochs) > 0 {
		evr = strconv.FormatUint(uint64(epochs[0]), 10) + ":" + evr
	}
	return fields[0], evr, true, nil
}

// optionalUint32s reads tag, treating an absent tag as empty.
func optionalUint32s(store Store, tag header.Tag) ([]uint32, error) {
	vals, err := store.Uint32s(tag)
	if errors.Is(err, header.ErrTagNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("legacy: read %s: %w", tag, err)
	}
	return vals, nil
}
