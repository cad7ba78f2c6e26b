// Package store holds the append-only item sequence fed by the stream
// reader and the filtered views the list renders from.
package store

// Item is one framed unit of input. Text is the raw payload as read,
// whitespace preserved. After insertion only the visibility flag mutates.
type Item struct {
	Text    string
	Icon    rune
	HasIcon bool
	visible bool
}

// Visible reports whether the item passed the last visibility evaluation.
func (it Item) Visible() bool {
	return it.visible
}

// Store is an append-only ordered sequence of items. Insertion order is
// preserved; items are never removed or reordered. The controller is the
// sole mutator.
type Store struct {
	items []Item
}

func New() *Store {
	return &Store{}
}

// Append adds an item with the given visibility and returns its index.
// The index never changes once assigned.
func (s *Store) Append(text string, visible bool) int {
	s.items = append(s.items, Item{Text: text, visible: visible})
	return len(s.items) - 1
}

func (s *Store) Len() int {
	return len(s.items)
}

// Item returns a copy of the item at index i.
func (s *Store) Item(i int) Item {
	return s.items[i]
}

func (s *Store) Text(i int) string {
	return s.items[i].Text
}

func (s *Store) Visible(i int) bool {
	return s.items[i].visible
}

func (s *Store) SetVisible(i int, v bool) {
	s.items[i].visible = v
}

// Icon returns the glyph attached to the item at index i, if any.
func (s *Store) Icon(i int) (rune, bool) {
	return s.items[i].Icon, s.items[i].HasIcon
}

// SetIcon attaches a resolved glyph to the item at index i.
func (s *Store) SetIcon(i int, glyph rune) {
	s.items[i].Icon = glyph
	s.items[i].HasIcon = true
}
