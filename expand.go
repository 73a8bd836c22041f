package filelist

import "fmt"

// Expand rebuilds the flat manifest from its compressed form.
//
// It returns ErrCorruptManifest when baseNames and dirIndexes differ in
// length or when any directory index falls outside dirNames.
func Expand(dirNames, baseNames []string, dirIndexes []uint32) ([]string, error) {
	if len(baseNames) != len(dirIndexes) {
		return nil, fmt.Errorf("%w: %d base names, %d directory indexes",
			ErrCorruptManifest, len(baseNames), len(dirIndexes))
	}
	if len(baseNames) == 0 {
		return nil, nil
	}

	paths := make([]string, len(baseNames))
	for i, base := range baseNames {
		di := dirIndexes[i]
		if uint64(di) >= uint64(len(dirNames)) {
			return nil, fmt.Errorf("%w: file %d: directory index %d out of range [0,%d)",
				ErrCorruptManifest, i, di, len(dirNames))
		}
		paths[i] = dirNames[di] + base
	}
	return paths, nil
}

// Paths returns the flat manifest described by c.
func (c Compressed) Paths() ([]string, error) {
	return Expand(c.DirNames, c.BaseNames, c.DirIndexes)
}
