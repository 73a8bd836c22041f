package filelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDir  string
		wantBase string
		wantOK   bool
	}{
		{"nested file", "/usr/bin/foo", "/usr/bin/", "foo", true},
		{"top level file", "/foo", "/", "foo", true},
		{"root", "/", "/", "", true},
		{"trailing slash", "/etc/", "/etc/", "", true},
		{"double slash", "/usr//lib", "/usr//", "lib", true},
		{"relative", "a/b", "a/", "b", true},
		{"no slash", "foo.spec", "", "foo.spec", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, base, ok := SplitPath(tt.input)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.input, dir+base)
			}
		})
	}
}
