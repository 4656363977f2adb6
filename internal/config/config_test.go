package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "~/.ssh", cfg.SSHDir)
	assert.Equal(t, "github-actions", cfg.DefaultName)
	assert.Equal(t, "rsa", cfg.KeyType)
	assert.Equal(t, 4096, cfg.Bits)
	assert.True(t, cfg.Authorize)
}

func TestLoad_FullConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := `ssh_dir: /tmp/keys
default_name: deploy
key_type: ed25519
bits: 2048
authorize: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/keys", cfg.SSHDir)
	assert.Equal(t, "deploy", cfg.DefaultName)
	assert.Equal(t, "ed25519", cfg.KeyType)
	assert.Equal(t, 2048, cfg.Bits)
	assert.False(t, cfg.Authorize)
}

func TestLoad_PartialConfigMergesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("default_name: ci\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ci", cfg.DefaultName)
	assert.Equal(t, "~/.ssh", cfg.SSHDir, "unset fields keep defaults")
	assert.Equal(t, 4096, cfg.Bits)
	assert.True(t, cfg.Authorize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ssh_dir: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestFind_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFind_GlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// No global config yet
	found, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, found)

	// Create it
	globalDir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	globalPath := filepath.Join(globalDir, GlobalConfigFile)
	require.NoError(t, os.WriteFile(globalPath, []byte("{}\n"), 0o644))

	found, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, globalPath, found)
}

func TestLoadOrDefault_NoConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DefaultName = "deploy"
	cfg.Bits = 2048

	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGlobalPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GlobalPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/keyup/config.yaml"), path)
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "bare tilde", path: "~", want: home},
		{name: "tilde slash", path: "~/.ssh", want: filepath.Join(home, ".ssh")},
		{name: "absolute path untouched", path: "/etc/ssh", want: "/etc/ssh"},
		{name: "relative path untouched", path: "keys", want: "keys"},
		{name: "tilde mid-path untouched", path: "/tmp/~x", want: "/tmp/~x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTilde(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
