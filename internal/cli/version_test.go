package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "dev version",
			input: "dev",
			want:  "dev",
		},
		{
			name:  "version without prefix",
			input: "1.2.3",
			want:  "v1.2.3",
		},
		{
			name:  "version with prefix",
			input: "v1.2.3",
			want:  "v1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	defer func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2025-01-08")

	assert.Equal(t, "1.2.3", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2025-01-08", date)
}
