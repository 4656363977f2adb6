package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPublicKey(t *testing.T) {
	tmpDir := t.TempDir()
	pubPath := filepath.Join(tmpDir, "id_test.pub")
	content := "ssh-rsa AAAAB3 test@host\n"
	require.NoError(t, os.WriteFile(pubPath, []byte(content), 0o644))

	data, err := ReadPublicKey(pubPath)
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "contents should be returned byte-exact")
}

func TestReadPublicKey_MissingFile(t *testing.T) {
	_, err := ReadPublicKey(filepath.Join(t.TempDir(), "nope.pub"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read public key")
}

func TestReadPrivateKey_MissingFile(t *testing.T) {
	_, err := ReadPrivateKey(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read private key")
}

func TestAppendAuthorizedKey_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authorized_keys")

	err := AppendAuthorizedKey(path, []byte("ssh-rsa AAAA key1\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh-rsa AAAA key1\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestAppendAuthorizedKey_PreservesExistingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authorized_keys")
	existing := "ssh-ed25519 AAAA pre-existing\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o600))

	err := AppendAuthorizedKey(path, []byte("ssh-rsa BBBB new-key\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing+"ssh-rsa BBBB new-key\n", string(data))
}

func TestAppendAuthorizedKey_OneLinePerRunInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authorized_keys")

	keys := []string{
		"ssh-rsa AAAA first\n",
		"ssh-rsa BBBB second\n",
		"ssh-rsa CCCC third\n",
	}
	for _, k := range keys {
		require.NoError(t, AppendAuthorizedKey(path, []byte(k)))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, len(keys))
	for i, k := range keys {
		assert.Equal(t, strings.TrimRight(k, "\n"), lines[i])
	}
}

func TestAppendAuthorizedKey_NormalizesTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authorized_keys")

	// Missing and doubled newlines both end up as exactly one
	require.NoError(t, AppendAuthorizedKey(path, []byte("ssh-rsa AAAA no-newline")))
	require.NoError(t, AppendAuthorizedKey(path, []byte("ssh-rsa BBBB doubled\n\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh-rsa AAAA no-newline\nssh-rsa BBBB doubled\n", string(data))
}

func TestAppendAuthorizedKey_DuplicatesAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authorized_keys")
	key := []byte("ssh-rsa AAAA dup\n")

	require.NoError(t, AppendAuthorizedKey(path, key))
	require.NoError(t, AppendAuthorizedKey(path, key))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "ssh-rsa AAAA dup"), "no deduplication is applied")
}

func TestAppendAuthorizedKey_OpenDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks don't apply to root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err := AppendAuthorizedKey(filepath.Join(dir, "authorized_keys"), []byte("ssh-rsa AAAA x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to open authorized_keys")
}

func TestAppendAuthorizedKey_ManyDistinctNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authorized_keys")

	const n = 10
	for i := 0; i < n; i++ {
		line := fmt.Sprintf("ssh-rsa KEY%02d name-%d\n", i, i)
		require.NoError(t, AppendAuthorizedKey(path, []byte(line)))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("ssh-rsa KEY%02d name-%d", i, i), line)
	}
}
