// pkg/header/generator.go
package header

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phuslu/log"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// UmbrellaPrefix is prepended to the module name to form the umbrella header
const UmbrellaPrefix = "kvs"

// Generator writes forwarding headers below a source directory
type Generator struct {
	SourceDir string
	Logger    *log.Logger
}

// Result lists the files written by Generate
type Result struct {
	Headers  []string
	Umbrella string
}

// NewGenerator creates a generator rooted at sourceDir
func NewGenerator(sourceDir string, logger *log.Logger) *Generator {
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &Generator{
		SourceDir: sourceDir,
		Logger:    logger,
	}
}

// ManifestPath returns the location of the manifest of module
func (g *Generator) ManifestPath(module string) string {
	return filepath.Join(g.SourceDir, module, ManifestFile)
}

// UmbrellaPath returns the location of the umbrella header of module
func (g *Generator) UmbrellaPath(module string) string {
	return filepath.Join(g.SourceDir, UmbrellaPrefix+module)
}

// Generate writes one forwarding header per manifest entry of module into
// dest, then overwrites the umbrella header. Files written before an error
// are left in place.
func (g *Generator) Generate(module, dest string) (*Result, error) {
	m, err := ReadManifest(g.ManifestPath(module))
	if err != nil {
		return nil, err
	}

	g.Logger.Debug().Str("module", module).Int("entries", len(m.Entries)).Msg("manifest loaded")

	res := &Result{}
	destDir := filepath.Join(g.SourceDir, dest)
	var umbrella bytes.Buffer

	for _, entry := range m.Entries {
		line := Include(module, entry)
		out := filepath.Join(destDir, Basename(entry))
		if err := writeLines(out, line); err != nil {
			return res, &core.Error{Op: "write header", Path: out, Err: err}
		}
		res.Headers = append(res.Headers, out)
		g.Logger.Debug().Str("file", out).Str("include", line).Msg("header written")

		fmt.Fprintln(&umbrella, line)
	}

	res.Umbrella = g.UmbrellaPath(module)
	if err := os.WriteFile(res.Umbrella, umbrella.Bytes(), 0644); err != nil {
		return res, &core.Error{Op: "write umbrella", Path: res.Umbrella, Err: err}
	}

	g.Logger.Info().Str("module", module).Str("dest", destDir).Int("headers", len(res.Headers)).Msg("headers generated")

	return res, nil
}

func writeLines(path string, lines ...string) error {
	var buf bytes.Buffer
	for _, l := range lines {
		fmt.Fprintln(&buf, l)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
