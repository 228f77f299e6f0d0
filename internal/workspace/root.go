// Package workspace maps a starting directory to a stable project root.
package workspace

import (
	"os"
	"path/filepath"
)

// rootMarkers are tested in order at each level of the walk. Version-control
// metadata first, then package manifests, then build-system files.
var rootMarkers = []string{
	".git",
	".hg",
	".svn",
	"package.json",
	"go.mod",
	"Cargo.toml",
	"pyproject.toml",
	"setup.py",
	"pom.xml",
	"Makefile",
}

// Resolve walks upward from start looking for the nearest directory that
// contains a project root marker. If no ancestor carries one, the starting
// directory itself is returned. The result is always an absolute path and
// Resolve never fails: unresolvable input degrades to the cleaned start path.
func Resolve(start string) string {
	if start == "" {
		if cwd, err := os.Getwd(); err == nil {
			start = cwd
		} else {
			start = "."
		}
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return filepath.Clean(start)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	for dir := abs; ; {
		if hasMarker(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return abs
}

func hasMarker(dir string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
