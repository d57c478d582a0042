package utils

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// RelPath returns the relative path from the base directory to the given path.
// On error the input path is returned.
func RelPath(baseDir string, path string) string {
	relPath, err := filepath.Rel(baseDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// HasExtension reports whether path ends with one of exts, ignoring case.
// Extensions are given with their leading dot.
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(exts, ext)
}

// ExpandPaths resolves files and directories into a sorted, de-duplicated
// list of regular files. Directories are walked recursively and only files
// matching exts are kept; files named explicitly are always kept.
func ExpandPaths(paths []string, exts []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !HasExtension(path, exts) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(out)
	return out, nil
}
