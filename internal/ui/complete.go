package ui

import "tmenu/internal/match"

// completionTail derives the in-line proposal for filterText from the
// visible candidate texts, given in view order. The proposal is the longest
// common case-folded prefix of every candidate that case-fold-starts-with
// filterText, rendered in the first such candidate's casing. A proposal is
// only made when that prefix strictly extends the filter text, so a query
// that already spans the candidates' divergence point proposes nothing.
func completionTail(candidates []string, filterText string) (string, bool) {
	first := ""
	limit := 0
	found := false
	for _, c := range candidates {
		if !match.HasPrefixFold(c, filterText) {
			continue
		}
		if !found {
			first, limit, found = c, len(c), true
			continue
		}
		if n := match.CommonPrefixFold(first, c); n < limit {
			limit = n
		}
	}
	if !found || limit <= len(filterText) {
		return "", false
	}
	return first[len(filterText):limit], true
}

// canComplete checks the completion preconditions against the query state:
// the last edit was an insertion, no selection is active, and the cursor
// sits at the end of the field.
func canComplete(q *query) bool {
	return q.lastEdit == editInsert && !q.HasSelection() && q.CursorAtEnd()
}
