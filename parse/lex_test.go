package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "subcommand with options",
			input: "move -p a.txt b.txt",
			want:  []string{"move", "-p", "a.txt", "b.txt"},
		},
		{
			name:  "quoted value",
			input: `commit --message "first commit"`,
			want:  []string{"commit", "--message", "first commit"},
		},
		{
			name:  "single quotes keep dashes",
			input: `run -- '-v --x'`,
			want:  []string{"run", "--", "-v --x"},
		},
		{
			name:  "escaped quotes",
			input: `echo \"hello\"`,
			want:  []string{"echo", `"hello"`},
		},
		{
			name:  "inline value",
			input: "--name=value   -n",
			want:  []string{"--name=value", "-n"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `commit --message "oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
