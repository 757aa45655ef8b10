package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("KVS_SOURCE_DIR", "")
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("..", "Source"), cfg.SourceDir)
	assert.Equal(t, filepath.Join("..", "kvs.conf"), cfg.ConfFile)
	assert.Equal(t, ".", cfg.ExampleDir)
	assert.Equal(t, ".cpp", cfg.SourceExt)
	assert.Equal(t, Tools{KVSMake: "kvsmake", QMake: "qmake"}, cfg.Tools)
}

func TestLoadConfigYAML(t *testing.T) {
	t.Setenv("KVS_SOURCE_DIR", "")
	path := filepath.Join(t.TempDir(), "kvstools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source_dir: /opt/kvs/Source
debug: true
tools:
  qmake: qmake-qt5
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/kvs/Source", cfg.SourceDir)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "qmake-qt5", cfg.Tools.QMake)

	// values missing from the file keep their defaults
	assert.Equal(t, "kvsmake", cfg.Tools.KVSMake)
	assert.Equal(t, ".cpp", cfg.SourceExt)
}

func TestLoadConfigTOML(t *testing.T) {
	t.Setenv("KVS_SOURCE_DIR", "")
	path := filepath.Join(t.TempDir(), "kvstools.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
example_dir = "../Example"
os = "windows"

[tools]
kvsmake = 'C:\kvs\bin\kvsmake.exe'
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "../Example", cfg.ExampleDir)
	assert.Equal(t, "windows", cfg.OS)
	assert.Equal(t, `C:\kvs\bin\kvsmake.exe`, cfg.Tools.KVSMake)
	assert.Equal(t, "qmake", cfg.Tools.QMake)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kvstools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tools: [unterminated"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("KVS_SOURCE_DIR", "/srv/kvs/Source")
	path := filepath.Join(t.TempDir(), "kvstools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_dir: ignored\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/kvs/Source", cfg.SourceDir)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("KVS_SOURCE_DIR", "")
	for _, name := range []string{"kvstools.yaml", "kvstools.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := DefaultConfig()
			cfg.ExampleDir = "../Example"
			cfg.Tools.QMake = "qmake6"

			require.NoError(t, SaveConfig(cfg, path))

			got, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}
