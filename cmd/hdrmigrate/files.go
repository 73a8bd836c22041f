package main

import (
	"fmt"
	"os"
	"path/filepath"

	digest "github.com/opencontainers/go-digest"

	"github.com/meigma/filelist/header"
)

func loadHeader(path string) (*header.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	h, err := header.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

func loadHeaders(paths []string) ([]*header.Header, error) {
	headers := make([]*header.Header, len(paths))
	for i, p := range paths {
		h, err := loadHeader(p)
		if err != nil {
			return nil, err
		}
		headers[i] = h
	}
	return headers, nil
}

// saveHeader encodes h and atomically replaces path with it, keeping the
// permissions of the file it replaces.
func saveHeader(path string, h *header.Header, opts []header.EncodeOption) (digest.Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	data, err := header.Marshal(h, opts...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".hdrmigrate-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", err
	}
	return header.Digest(data), nil
}
