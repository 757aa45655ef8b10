package header

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

func quietLogger() *log.Logger {
	return &log.Logger{Level: log.ErrorLevel, Writer: &log.IOWriter{Writer: os.Stderr}}
}

// setupSource creates <root>/Source/<module>/KVS_HEADER_LIST and <root>/Source/<dest>.
func setupSource(t *testing.T, module, dest, manifest string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "Source")
	require.NoError(t, os.MkdirAll(filepath.Join(src, module), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(src, dest), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, module, ManifestFile), []byte(manifest), 0644))
	return src
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate(t *testing.T) {
	src := setupSource(t, "Core", "kvs", "Utility/Timer\nMatrix/Vector\nFileFormat/KVSML/KVSMLImageObject\n")

	g := NewGenerator(src, quietLogger())
	res, err := g.Generate("Core", "kvs")
	require.NoError(t, err)

	assert.Equal(t, "#include <Core/Utility/Timer.h>\n", readFile(t, filepath.Join(src, "kvs", "Timer")))
	assert.Equal(t, "#include <Core/Matrix/Vector.h>\n", readFile(t, filepath.Join(src, "kvs", "Vector")))
	assert.Equal(t, "#include <Core/FileFormat/KVSML/KVSMLImageObject.h>\n", readFile(t, filepath.Join(src, "kvs", "KVSMLImageObject")))

	assert.Equal(t, filepath.Join(src, "kvsCore"), res.Umbrella)
	assert.Len(t, res.Headers, 3)
}

func TestGenerateUmbrellaOrder(t *testing.T) {
	entries := []string{"Zeta/Last", "Alpha/First", "Mid/Middle", "Alpha/Again"}
	src := setupSource(t, "SupportGLUT", "kvs/glut", strings.Join(entries, "\n")+"\n")

	_, err := NewGenerator(src, quietLogger()).Generate("SupportGLUT", "kvs/glut")
	require.NoError(t, err)

	got := strings.Split(strings.TrimSuffix(readFile(t, filepath.Join(src, "kvsSupportGLUT")), "\n"), "\n")
	want := make([]string, len(entries))
	for i, e := range entries {
		want[i] = Include("SupportGLUT", e)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("umbrella mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateDuplicates(t *testing.T) {
	src := setupSource(t, "Core", "kvs", "A/Timer\nB/Timer\n")

	res, err := NewGenerator(src, quietLogger()).Generate("Core", "kvs")
	require.NoError(t, err)

	// both entries land on the same forwarding file, the last one wins
	assert.Equal(t, "#include <Core/B/Timer.h>\n", readFile(t, filepath.Join(src, "kvs", "Timer")))
	assert.Equal(t, "#include <Core/A/Timer.h>\n#include <Core/B/Timer.h>\n", readFile(t, res.Umbrella))
}

func TestGenerateUmbrellaOverwritten(t *testing.T) {
	src := setupSource(t, "Core", "kvs", "Utility/Timer\n")
	require.NoError(t, os.WriteFile(filepath.Join(src, "kvsCore"), []byte("stale\nstale\n"), 0644))

	_, err := NewGenerator(src, quietLogger()).Generate("Core", "kvs")
	require.NoError(t, err)
	assert.Equal(t, "#include <Core/Utility/Timer.h>\n", readFile(t, filepath.Join(src, "kvsCore")))
}

func TestGenerateMissingManifest(t *testing.T) {
	src := t.TempDir()

	_, err := NewGenerator(src, quietLogger()).Generate("Core", "kvs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrManifestNotFound))

	var e *core.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, filepath.Join(src, "Core", ManifestFile), e.Path)
}

func TestGenerateMissingDestination(t *testing.T) {
	src := setupSource(t, "Core", "kvs", "Utility/Timer\n")

	_, err := NewGenerator(src, quietLogger()).Generate("Core", "nowhere")
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(src, "kvsCore"))
	assert.True(t, os.IsNotExist(statErr), "umbrella must not be written after a failed header")
}

func TestGenerateKeepsPartialOutput(t *testing.T) {
	// the blank entry maps onto the destination directory itself and fails
	src := setupSource(t, "Core", "kvs", "Utility/Timer\n\nMatrix/Vector\n")

	res, err := NewGenerator(src, quietLogger()).Generate("Core", "kvs")
	require.Error(t, err)
	assert.Equal(t, []string{filepath.Join(src, "kvs", "Timer")}, res.Headers)
	assert.FileExists(t, filepath.Join(src, "kvs", "Timer"))
	assert.NoFileExists(t, filepath.Join(src, "kvs", "Vector"))
}
