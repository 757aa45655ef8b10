// pkg/header/manifest.go
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// ManifestFile is the name of the header list inside a source module
const ManifestFile = "KVS_HEADER_LIST"

// Manifest is the ordered list of header identifiers of a module,
// e.g. "Utility/Timer" for Source/Core/Utility/Timer.h.
type Manifest struct {
	Entries []string
}

// ReadManifest reads the manifest at path. Entries keep file order;
// blank lines and duplicates are kept as they are.
func ReadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &core.Error{Op: "read manifest", Path: path, Err: fmt.Errorf("%w: %w", core.ErrManifestNotFound, err)}
		}
		return nil, &core.Error{Op: "read manifest", Path: path, Err: err}
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, &core.Error{Op: "read manifest", Path: path, Err: err}
	}
	return m, nil
}

// ParseManifest reads one entry per line from r
func ParseManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m.Entries = append(m.Entries, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Include returns the include directive for entry in module
func Include(module, entry string) string {
	return fmt.Sprintf("#include <%s/%s.h>", module, entry)
}

// Basename returns the forwarding header name for entry
func Basename(entry string) string {
	if entry == "" {
		return ""
	}
	return path.Base(entry)
}
