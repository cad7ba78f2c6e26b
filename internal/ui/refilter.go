package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tmenu/internal/match"
	"tmenu/internal/store"
)

// refilterMsg fires a scheduled visibility pass.
type refilterMsg struct {
	gen int
}

// scheduler debounces refilter passes. Each schedule bumps the generation,
// so at most one pending pass is live: a fire carrying a stale generation
// is discarded, which is how the previous timer is cancelled. seen is the
// store length at the end of the last applied pass; rows at or beyond it
// were tagged against whatever text was live when they arrived, so every
// pass re-evaluates them regardless of the usual shortcuts.
type scheduler struct {
	delay time.Duration
	gen   int
	last  string // filter text of the last applied pass
	seen  int    // store length covered by the last applied pass
}

func newScheduler(delay time.Duration) *scheduler {
	return &scheduler{delay: delay}
}

// schedule arms the debounce timer, superseding any pending pass.
func (s *scheduler) schedule() tea.Cmd {
	s.gen++
	gen := s.gen
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return refilterMsg{gen: gen}
	})
}

// current reports whether gen identifies the newest scheduled pass.
func (s *scheduler) current(gen int) bool {
	return gen == s.gen
}

// apply recomputes row visibility for text. changed reports whether the
// filter text differs from the last applied pass; touched reports whether
// any row was evaluated. When text extends the previous filter by appended
// characters, hidden rows the last pass covered stay hidden and only
// visible ones are rescanned; rows appended since that pass are always
// evaluated, even when the text is unchanged, since their arrival tagging
// may reflect an interim filter that never settled.
func (s *scheduler) apply(st *store.Store, text string) (changed, touched bool) {
	changed = text != s.last
	if !changed && s.seen == st.Len() {
		return false, false
	}
	narrow := changed && match.HasPrefixFold(text, s.last)
	for i := 0; i < st.Len(); i++ {
		if i < s.seen {
			if !changed {
				continue
			}
			if narrow && !st.Visible(i) {
				continue
			}
		}
		st.SetVisible(i, match.Match(st.Text(i), text))
	}
	s.last = text
	s.seen = st.Len()
	return changed, true
}
