// pkg/example/discover.go
package example

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// SupportMarker identifies feature-gated example directories
const SupportMarker = "Support"

// Discover walks root and returns every directory holding a file with
// extension ext, in walk order and at most once. Directories whose path
// contains "Support" are kept only when features enables them.
// Entries below root that cannot be read are skipped.
func Discover(root, ext string, features Features) ([]string, error) {
	if ext == "" {
		return nil, &core.Error{Op: "discover examples", Path: root, Err: errors.New("empty source extension")}
	}

	var dirs []string
	seen := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ext {
			return nil
		}

		dir := filepath.Dir(path)
		if seen[dir] {
			return nil
		}
		seen[dir] = true

		if Included(dir, features) {
			dirs = append(dirs, dir)
		}
		return nil
	})
	if err != nil {
		return nil, &core.Error{Op: "discover examples", Path: root, Err: err}
	}

	return dirs, nil
}

// Included applies the Support gating rule to dir
func Included(dir string, features Features) bool {
	if !strings.Contains(dir, SupportMarker) {
		return true
	}
	return features.Enabled(dir)
}
