// Package match implements the token-subsequence matcher used to decide
// row visibility, plus the natural-order comparison used by the sorted view.
//
// Matching is ASCII-only: bytes are compared under ASCII toupper semantics
// and bytes >= 0x80 compare by identity.
package match

// Index returns the earliest position in haystack at which needle matches
// as a space-separated token subsequence, or -1 when there is no match.
//
// The needle is split on single space characters into tokens. Each token
// must occur in haystack, case-folded, starting at or after the end of the
// previous token's occurrence. Consecutive spaces are not collapsed; an
// empty token matches the empty string. An empty needle matches at 0.
func Index(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	if haystack == "" {
		return -1
	}

	pos := -1
	h := 0
	t0 := 0
	for {
		t1 := t0
		for t1 < len(needle) && needle[t1] != ' ' {
			t1++
		}
		p := indexFold(haystack, h, needle[t0:t1])
		if p < 0 {
			return -1
		}
		if pos < 0 {
			pos = p
		}
		h = p + (t1 - t0)
		if t1 == len(needle) {
			break
		}
		t0 = t1 + 1
		if t0 == len(needle) {
			// Trailing space: the final empty token matches the empty string.
			break
		}
	}
	return pos
}

// Match reports whether needle matches haystack as a token subsequence.
func Match(haystack, needle string) bool {
	return Index(haystack, needle) >= 0
}

// HasPrefixFold reports whether s begins with prefix under ASCII case-fold.
func HasPrefixFold(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if fold(s[i]) != fold(prefix[i]) {
			return false
		}
	}
	return true
}

// CommonPrefixFold returns the length of the longest common prefix of a
// and b under ASCII case-fold.
func CommonPrefixFold(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && fold(a[i]) == fold(b[i]) {
		i++
	}
	return i
}

// indexFold returns the first occurrence of sub in s at or after position
// from, under ASCII case-fold. An empty sub matches at from.
func indexFold(s string, from int, sub string) int {
	if sub == "" {
		return from
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if HasPrefixFold(s[i:], sub) {
			return i
		}
	}
	return -1
}

func fold(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
