package filelist

import "strings"

// SplitPath splits p after its final slash.
//
// dir keeps the trailing slash, so dir+base == p:
//   - "/usr/bin/foo" → "/usr/bin/", "foo"
//   - "/etc/"        → "/etc/", ""
//   - "/"            → "/", ""
//
// ok is false when p contains no slash at all.
func SplitPath(p string) (dir, base string, ok bool) {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return "", p, false
	}
	return p[:i+1], p[i+1:], true
}
