package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBoardSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		ok   bool
	}{
		{"zero means menu", 0, true},
		{"smallest", 1, true},
		{"largest", 5, true},
		{"negative", -1, false},
		{"too big", 6, false},
		{"way too big", 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBoardSize(tt.n)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
