package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{"empty means auto", "", 0, 0, false},
		{"valid", "80x24", 80, 24, false},
		{"large", "200x60", 200, 60, false},
		{"missing height", "80", 0, 0, true},
		{"missing width", "x24", 0, 0, true},
		{"zero dimension", "0x24", 0, 0, true},
		{"negative", "-80x24", 0, 0, true},
		{"garbage", "full", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseGeometry(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}
