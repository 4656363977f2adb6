package cli

import (
	"testing"

	"github.com/keyup-sh/keyup/internal/inspect"
	"github.com/stretchr/testify/assert"
)

func TestMaxNameWidth(t *testing.T) {
	tests := []struct {
		name string
		keys []inspect.Key
		want int
	}{
		{
			name: "empty list uses header width",
			keys: nil,
			want: len("NAME") + 2,
		},
		{
			name: "short names use header width",
			keys: []inspect.Key{{Name: "ci"}},
			want: len("NAME") + 2,
		},
		{
			name: "longest name wins",
			keys: []inspect.Key{{Name: "ci"}, {Name: "github-actions"}},
			want: len("github-actions") + 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maxNameWidth(tt.keys))
		})
	}
}
