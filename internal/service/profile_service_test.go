package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "Go,SQL,Redis", []string{"Go", "SQL", "Redis"}},
		{"whitespace trimmed", " Go , SQL ", []string{"Go", "SQL"}},
		{"empty entries dropped", "Go,,SQL,, ,", []string{"Go", "SQL"}},
		{"single skill", "Go", []string{"Go"}},
		{"only separators", ", ,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSkills(tt.input))
		})
	}
}
