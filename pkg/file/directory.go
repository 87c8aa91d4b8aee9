// Copyright (c) 2026, proxmox-hostname-change contributors.
// Licensed under the MIT License as shown at https://opensource.org/license/mit.

package file

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exists reports whether a path exists at all.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether a path exists and is a directory.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// CountFiles walks the whole subtree under root and counts every entry
// that is not a directory.  A missing root counts as empty.  Symlinks
// and other special files count as files: anything left behind is a
// reason not to delete the tree.
func CountFiles(root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count, err
}

// ListByExt returns the names of the regular files directly under dir
// that carry the given extension, sorted.  A missing directory yields
// an empty list.
func ListByExt(dir string, ext string) ([]string, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	names := []string{}
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if strings.HasSuffix(de.Name(), ext) {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
