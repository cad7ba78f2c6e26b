package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty needle", "apple", "", 0},
		{"empty needle empty haystack", "", "", 0},
		{"empty haystack", "", "a", -1},
		{"simple prefix", "apple", "ap", 0},
		{"mid string", "banana", "nan", 2},
		{"no match", "banana", "x", -1},
		{"case fold needle upper", "foobar", "FOO", 0},
		{"case fold haystack upper", "FOOBAR", "foo", 0},
		{"mixed case", "FooBar", "oBA", 2},
		{"two tokens", "one two", "o t", 0},
		{"tokens in other", "other", "o t", 0},
		{"tokens not in order", "two one", "t o", 0},
		{"second token missing", "one three", "o x", -1},
		{"token after first token end", "one three", "o th", 0},
		{"three tokens", "alpha beta gamma", "al be ga", 0},
		{"first token later", "xxab", "a b", 2},
		{"trailing space matches", "apple", "apple ", 0},
		{"trailing space alone", "apple", "a ", 0},
		{"leading space", "xa", " a", 0},
		{"consecutive spaces", "one two", "o  t", 0},
		{"needle longer than haystack", "ab", "abc", -1},
		{"token overlap rejected", "aba", "ab ba", -1},
		{"high bytes identity", "caf\xc3\xa9", "f\xc3\xa9", 2},
		{"high bytes mismatch", "caf\xc3\xa9", "f\xc3\xa8", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Index(tt.haystack, tt.needle))
		})
	}
}

// Matching must be invariant under case-folding of either side.
func TestIndexCaseFoldLaw(t *testing.T) {
	pairs := []struct{ haystack, needle string }{
		{"Foo", "f"},
		{"foobar", "OBA"},
		{"One Two Three", "one thr"},
		{"MiXeD CaSe", "mixed case"},
	}
	for _, p := range pairs {
		got := Index(p.haystack, p.needle)
		folded := Index(strings.ToUpper(p.haystack), strings.ToUpper(p.needle))
		assert.Equal(t, got, folded, "haystack=%q needle=%q", p.haystack, p.needle)
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("one three", "o t h"))
	assert.True(t, Match("other", "o t"))
	assert.False(t, Match("one two", "o t h"))
	assert.True(t, Match("other", "o t h"))
}

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		s, prefix string
		want      bool
	}{
		{"foobar", "FOO", true},
		{"FOOBAR", "foo", true},
		{"foobar", "bar", false},
		{"fo", "foo", false},
		{"anything", "", true},
		{"", "", true},
		{"caf\xc3\xa9", "caf\xc3", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasPrefixFold(tt.s, tt.prefix), "s=%q prefix=%q", tt.s, tt.prefix)
	}
}
