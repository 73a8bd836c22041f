package filelist

// Compressed is the directory-table form of a file manifest.
//
// BaseNames and DirIndexes are index-aligned with the manifest they were
// built from, minus any Skipped positions.
type Compressed struct {
	DirNames   []string
	BaseNames  []string
	DirIndexes []uint32

	// Skipped lists the manifest positions dropped because the path had no
	// slash. It is empty for well-formed manifests.
	Skipped []int
}

// Len returns the number of files in the compressed manifest.
func (c Compressed) Len() int {
	return len(c.BaseNames)
}

// Compress builds the compressed form of paths.
//
// Paths are processed in the given order and never re-sorted. Each distinct
// directory prefix is stored once, at the slot where it was first seen, so
// the result does not depend on the manifest being sorted.
//
// Source packages carry no directory structure: every file maps to a single
// empty directory and keeps its full path as the base name.
//
// An empty manifest yields an empty Compressed for both package kinds.
func Compress(paths []string, source bool) Compressed {
	if len(paths) == 0 {
		return Compressed{}
	}
	if source {
		return compressSource(paths)
	}

	c := Compressed{
		BaseNames:  make([]string, 0, len(paths)),
		DirIndexes: make([]uint32, 0, len(paths)),
	}
	slots := make(map[string]uint32)
	for i, p := range paths {
		dir, base, ok := SplitPath(p)
		if !ok {
			c.Skipped = append(c.Skipped, i)
			continue
		}
		slot, seen := slots[dir]
		if !seen {
			slot = uint32(len(c.DirNames)) //nolint:gosec // bounded by len(paths)
			slots[dir] = slot
			c.DirNames = append(c.DirNames, dir)
		}
		c.BaseNames = append(c.BaseNames, base)
		c.DirIndexes = append(c.DirIndexes, slot)
	}
	return c
}

func compressSource(paths []string) Compressed {
	c := Compressed{
		DirNames:   []string{""},
		BaseNames:  make([]string, len(paths)),
		DirIndexes: make([]uint32, len(paths)),
	}
	copy(c.BaseNames, paths)
	return c
}
