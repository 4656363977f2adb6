package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrFS,
		ErrKeygen,
		ErrExec,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "keygen error",
			code:       ErrKeygen,
			message:    "ssh-keygen exited with status 1",
			suggestion: "Ensure ssh-keygen is installed",
		},
		{
			name:       "filesystem error without suggestion",
			code:       ErrFS,
			message:    "Failed to create .ssh directory",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(cause, "Failed to append to authorized_keys")

	assert.Equal(t, ErrFS, err.Code, "Wrap should default to ErrFS")
	assert.Equal(t, "Failed to append to authorized_keys", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("exec: \"ssh-keygen\": executable file not found in $PATH")
	err := WrapWithCode(cause, ErrKeygen, "Failed to generate SSH key", "Install OpenSSH")

	assert.Equal(t, ErrKeygen, err.Code)
	assert.Equal(t, "Failed to generate SSH key", err.Message)
	assert.Equal(t, "Install OpenSSH", err.Suggestion)
	assert.Equal(t, cause, err.Cause)
}

func TestError_Format(t *testing.T) {
	err := WrapWithCode(
		errors.New("no such file or directory"),
		ErrFS,
		"Failed to read public key",
		"Check that the file exists and is readable",
	)

	msg := err.Error()

	// First line carries the failure symbol and message
	lines := strings.Split(msg, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗ "), "first line should start with failure symbol")
	assert.Contains(t, msg, "Failed to read public key")
	assert.Contains(t, msg, "no such file or directory")
	assert.Contains(t, msg, "Check that the file exists and is readable")
}

func TestError_FormatWithoutCauseOrSuggestion(t *testing.T) {
	err := New(ErrConfig, "Something broke", "")
	msg := err.Error()

	assert.Contains(t, msg, "Something broke")
	assert.Equal(t, 1, strings.Count(msg, "\n"), "bare message should render as a single line")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "wrapped")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrKeygen, "boom", ""),
			code: ErrKeygen,
			want: true,
		},
		{
			name: "mismatched code",
			err:  New(ErrFS, "boom", ""),
			code: ErrKeygen,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			code: ErrFS,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: ErrFS,
			want: false,
		},
		{
			name: "wrapped structured error",
			err:  Wrap(New(ErrConfig, "inner", ""), "outer"),
			code: ErrFS,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}
