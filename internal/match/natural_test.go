package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatural(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "abc", "abc", 0},
		{"byte order", "abc", "abd", -1},
		{"prefix shorter first", "ab", "abc", -1},
		{"prefix longer last", "abc", "ab", 1},
		{"digit runs numeric", "item2", "item10", -1},
		{"digit runs numeric reversed", "item10", "item2", 1},
		{"digit run vs letter", "a1", "ab", -1},
		{"leading zeros equal value", "a01", "a1", 0},
		{"leading zeros then suffix", "a01x", "a1y", -1},
		{"long numbers", "file999999999999999999990", "file999999999999999999991", -1},
		{"digits against empty", "1", "", 1},
		{"case sensitive bytes", "Apple", "apple", -1},
		{"mixed segments", "v1.2.10", "v1.2.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Natural(tt.a, tt.b))
		})
	}
}
