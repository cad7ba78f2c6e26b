package ui

import "strings"

// editKind classifies the last field edit; completion only follows
// insertions.
type editKind int

const (
	editNone editKind = iota
	editInsert
	editDelete
)

// query is the single-writer model of the input field. It mirrors the raw
// field text, tracks the selection bounds of an active completion proposal
// (selFrom..selTo), and derives the filter text. The filtering flag guards
// programmatic edits so they do not schedule refilters against themselves.
type query struct {
	raw       string
	cursor    int
	selFrom   int
	selTo     int
	outputSep string
	original  string // field content at the last user-initiated change
	lastEdit  editKind
	filtering bool
}

func newQuery(outputSep string) *query {
	return &query{outputSep: outputSep, filtering: true}
}

func (q *query) Raw() string {
	return q.raw
}

func (q *query) Original() string {
	return q.original
}

// HasSelection reports whether a completion tail is currently selected.
func (q *query) HasSelection() bool {
	return q.selFrom < q.selTo
}

// CursorAtEnd reports whether the selection end sits at the end of the
// field, a completion precondition.
func (q *query) CursorAtEnd() bool {
	return q.selTo == len(q.raw)
}

// FilterText derives the active query: the substring after the last output
// separator, up to the start of any selected proposal tail.
func (q *query) FilterText() string {
	end := q.selFrom
	if q.outputSep != "" {
		if i := strings.LastIndex(q.raw[:end], q.outputSep); i >= 0 {
			return q.raw[i+len(q.outputSep) : end]
		}
	}
	return q.raw[:end]
}

// ConfirmedPrefix returns the field content through the last output
// separator. The remainder is the segment currently under edit.
func (q *query) ConfirmedPrefix() string {
	if q.outputSep == "" {
		return ""
	}
	if i := strings.LastIndex(q.raw, q.outputSep); i >= 0 {
		return q.raw[:i+len(q.outputSep)]
	}
	return ""
}

// UserEdit records a user-initiated change to the field and refreshes the
// original-text snapshot.
func (q *query) UserEdit(raw string, cursor int) {
	if len(raw) >= len(q.raw) {
		q.lastEdit = editInsert
	} else {
		q.lastEdit = editDelete
	}
	q.raw = raw
	q.cursor = cursor
	q.selFrom, q.selTo = cursor, cursor
	q.original = raw
}

// SetText replaces the field content programmatically (list-cursor driven).
// The original-text snapshot is left alone so it can be restored.
func (q *query) SetText(raw string) {
	q.raw = raw
	q.cursor = len(raw)
	q.selFrom, q.selTo = len(raw), len(raw)
	q.lastEdit = editNone
}

// ApplyProposal appends tail at the cursor and selects the inserted range
// so that further typing replaces it.
func (q *query) ApplyProposal(tail string) {
	q.raw = q.raw[:q.selFrom] + tail
	q.selTo = len(q.raw)
}

// DropProposal removes an active proposal tail and returns the remaining
// user text.
func (q *query) DropProposal() string {
	if q.HasSelection() {
		q.raw = q.raw[:q.selFrom]
		q.selTo = q.selFrom
		q.cursor = q.selFrom
	}
	return q.raw
}

// AcceptProposal folds an active proposal tail into the user text.
func (q *query) AcceptProposal() {
	if !q.HasSelection() {
		return
	}
	q.selFrom = len(q.raw)
	q.selTo = q.selFrom
	q.cursor = q.selFrom
	q.original = q.raw
	q.lastEdit = editInsert
}
