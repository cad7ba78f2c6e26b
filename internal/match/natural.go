package match

// Natural compares a and b with embedded runs of ASCII digits compared
// numerically and everything else compared bytewise. It returns -1, 0 or 1.
//
// Runs with the same numeric value but different text ("01" vs "1") compare
// equal here; callers that need a total order break ties elsewhere.
func Natural(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			var c int
			c, i, j = compareDigitRun(a, i, b, j)
			if c != 0 {
				return c
			}
			continue
		}
		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}

// compareDigitRun compares the maximal digit runs starting at a[i] and b[j]
// as integers and returns the verdict plus the positions past both runs.
func compareDigitRun(a string, i int, b string, j int) (int, int, int) {
	ai := i
	for ai < len(a) && isDigit(a[ai]) {
		ai++
	}
	bj := j
	for bj < len(b) && isDigit(b[bj]) {
		bj++
	}

	ra := trimZeros(a[i:ai])
	rb := trimZeros(b[j:bj])

	switch {
	case len(ra) < len(rb):
		return -1, ai, bj
	case len(ra) > len(rb):
		return 1, ai, bj
	case ra < rb:
		return -1, ai, bj
	case ra > rb:
		return 1, ai, bj
	}
	return 0, ai, bj
}

func trimZeros(s string) string {
	for len(s) > 0 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
