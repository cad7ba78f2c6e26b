package store

import (
	"sort"

	"tmenu/internal/match"
)

// Ordering selects how a view arranges visible rows.
type Ordering int

const (
	// Insertion yields rows in store order.
	Insertion Ordering = iota
	// Natural yields rows sorted by item text with embedded digit runs
	// compared numerically. Ties keep store order.
	Natural
)

// View is a projection of the store restricted to visible rows. It borrows
// rows by index and owns nothing; the store outlives every view.
type View struct {
	store    *Store
	ordering Ordering
}

func NewView(s *Store, o Ordering) *View {
	return &View{store: s, ordering: o}
}

func (v *View) Ordering() Ordering {
	return v.ordering
}

// VisibleIndices materializes the store indices of visible rows in the
// view's order.
func (v *View) VisibleIndices() []int {
	rows := make([]int, 0, v.store.Len())
	for i := 0; i < v.store.Len(); i++ {
		if v.store.Visible(i) {
			rows = append(rows, i)
		}
	}
	if v.ordering == Natural {
		sort.SliceStable(rows, func(a, b int) bool {
			return match.Natural(v.store.Text(rows[a]), v.store.Text(rows[b])) < 0
		})
	}
	return rows
}
