// pkg/example/features.go
package example

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// SupportPrefix marks the feature lines of kvs.conf
const SupportPrefix = "KVS_SUPPORT_"

// Features is the ordered list of enabled feature keywords, e.g. "OPENGL"
// for KVS_SUPPORT_OPENGL=1. Duplicates are possible.
type Features []string

// LoadFeatures reads the enabled features from the configuration file at path
func LoadFeatures(path string) (Features, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &core.Error{Op: "read configuration", Path: path, Err: fmt.Errorf("%w: %w", core.ErrConfigNotFound, err)}
		}
		return nil, &core.Error{Op: "read configuration", Path: path, Err: err}
	}
	defer f.Close()

	features, err := ParseFeatures(f)
	if err != nil {
		return nil, &core.Error{Op: "read configuration", Path: path, Err: err}
	}
	return features, nil
}

// ParseFeatures scans KVS_SUPPORT_<NAME>=<0|1> lines. Other lines are ignored.
func ParseFeatures(r io.Reader) (Features, error) {
	var features Features
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, SupportPrefix) {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		if strings.TrimSpace(value) != "1" {
			continue
		}
		features = append(features, Keyword(strings.TrimSpace(key)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return features, nil
}

// Keyword derives the directory keyword of a feature key:
// KVS_SUPPORT_OPENGL becomes OPENGL, KVS_SUPPORT_OPEN_CV becomes OPENCV.
func Keyword(key string) string {
	if len(key) < 4 {
		return ""
	}
	k := strings.ReplaceAll(key[4:], "_", "")
	return strings.TrimPrefix(k, "SUPPORT")
}

// Enabled reports whether the upper-cased dir contains any keyword.
// The check is a plain substring match, so a short keyword can match an
// unrelated directory and an empty keyword (KVS_SUPPORT_=1) matches all.
func (f Features) Enabled(dir string) bool {
	upper := strings.ToUpper(dir)
	for _, k := range f {
		if strings.Contains(upper, k) {
			return true
		}
	}
	return false
}
