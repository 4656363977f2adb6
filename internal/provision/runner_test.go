package provision

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_CapturesOutputAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	runner := NewRunner()
	stdout, stderr, exitCode, err := runner.Run("sh", "-c", "echo out; echo err >&2; exit 3")

	require.NoError(t, err, "non-zero exit is not a run error")
	assert.Equal(t, 3, exitCode)
	assert.Equal(t, "out\n", string(stdout))
	assert.Equal(t, "err\n", string(stderr))
}

func TestExecRunner_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	runner := NewRunner()
	stdout, _, exitCode, err := runner.Run("sh", "-c", "echo hello")

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "hello\n", string(stdout))
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := NewRunner()
	_, _, exitCode, err := runner.Run("definitely-not-a-real-binary-xyz")

	require.Error(t, err)
	assert.Equal(t, -1, exitCode)
}
