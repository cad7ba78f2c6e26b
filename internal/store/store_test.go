package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAppendOrder(t *testing.T) {
	s := New()
	texts := []string{"apple", "banana", "apricot", "  padded  ", ""}
	for i, text := range texts {
		idx := s.Append(text, true)
		assert.Equal(t, i, idx)
	}

	require.Equal(t, len(texts), s.Len())
	for i, text := range texts {
		assert.Equal(t, text, s.Text(i), "whitespace and empties preserved")
	}
}

func TestStoreVisibility(t *testing.T) {
	s := New()
	s.Append("one", true)
	s.Append("two", false)

	assert.True(t, s.Visible(0))
	assert.False(t, s.Visible(1))

	s.SetVisible(0, false)
	s.SetVisible(1, true)
	assert.False(t, s.Visible(0))
	assert.True(t, s.Visible(1))
}

func TestStoreIcon(t *testing.T) {
	s := New()
	s.Append("a", true)

	assert.False(t, s.Item(0).HasIcon)
	s.SetIcon(0, '/')
	assert.True(t, s.Item(0).HasIcon)
	assert.Equal(t, '/', s.Item(0).Icon)
}

func TestViewInsertionOrder(t *testing.T) {
	s := New()
	s.Append("banana", true)
	s.Append("apple", false)
	s.Append("cherry", true)

	v := NewView(s, Insertion)
	assert.Equal(t, []int{0, 2}, v.VisibleIndices())
}

func TestViewNaturalOrder(t *testing.T) {
	s := New()
	s.Append("item10", true)
	s.Append("item2", true)
	s.Append("item1", true)

	v := NewView(s, Natural)
	assert.Equal(t, []int{2, 1, 0}, v.VisibleIndices())
}

// Rows whose texts compare equal under natural order keep store order.
func TestViewNaturalOrderStableTies(t *testing.T) {
	s := New()
	s.Append("a01", true)
	s.Append("a1", true)
	s.Append("a0", true)

	v := NewView(s, Natural)
	assert.Equal(t, []int{2, 0, 1}, v.VisibleIndices())
}

func TestViewEmpty(t *testing.T) {
	s := New()
	s.Append("hidden", false)

	v := NewView(s, Insertion)
	assert.Empty(t, v.VisibleIndices())
}
