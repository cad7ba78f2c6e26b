package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tmenu/internal/icon"
	"tmenu/internal/match"
	"tmenu/internal/reader"
	"tmenu/internal/store"
)

// Status is the terminal state of a session, mapped to the process exit
// code by the caller.
type Status int

const (
	StatusRunning Status = iota
	StatusSubmitted
	StatusCancelled
	StatusFatal
)

// Options configure a picker session. Separators are expected unescaped.
type Options struct {
	InputSep  string
	OutputSep string // multi-select join separator; empty disables multi-select
	Label     string
	Title     string
	Minimal   bool // start with the list hidden
	Sort      bool // natural ordering instead of insertion order
	Width     int  // geometry clamp in cells, 0 = use the terminal
	Height    int
	Icons     bool

	RefilterDelay time.Duration
	PollInterval  time.Duration
	ReadBatch     int
	BufferSize    int
}

// focusArea tracks whether keys go to the input field or the list.
type focusArea int

const (
	focusField focusArea = iota
	focusList
)

// readTickMsg drives one reader drain.
type readTickMsg struct{}

const listPage = 10

// Model is the Bubble Tea model mediating the input field, the item store,
// the refilter scheduler and the stream reader. All state lives here; the
// components never talk to each other directly.
type Model struct {
	opts  Options
	input textinput.Model
	query *query
	sched *scheduler
	items *store.Store
	view  *store.View
	rd    *reader.Reader
	icons icon.Resolver
	log   *log.Logger

	rows       []int // visible store indices in view order
	cursor     int   // position within rows; -1 = unset
	offset     int   // list scroll offset
	marks      map[int]bool
	focus      focusArea
	readerDone bool

	width, height int
	status        Status
	fatalErr      error
}

// NewModel builds a session over an already-started reader.
func NewModel(opts Options, rd *reader.Reader, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.Width = 50

	if opts.RefilterDelay <= 0 {
		opts.RefilterDelay = 200 * time.Millisecond
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Millisecond
	}

	items := store.New()
	ordering := store.Insertion
	if opts.Sort {
		ordering = store.Natural
	}

	var resolver icon.Resolver
	if opts.Icons {
		resolver = icon.FileResolver{}
	}

	return Model{
		opts:   opts,
		input:  ti,
		query:  newQuery(opts.OutputSep),
		sched:  newScheduler(opts.RefilterDelay),
		items:  items,
		view:   store.NewView(items, ordering),
		rd:     rd,
		icons:  resolver,
		log:    logger,
		cursor: -1,
		marks:  make(map[int]bool),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.readTick()}
	if m.opts.Title != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.opts.Title))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.opts.Width > 0 && m.opts.Width < m.width {
			m.width = m.opts.Width
		}
		if m.opts.Height > 0 && m.opts.Height < m.height {
			m.height = m.opts.Height
		}
		m.input.Width = maxInt(m.width-4, 10)
		return m, nil
	case readTickMsg:
		return m.handleReadTick()
	case refilterMsg:
		return m.handleRefilter(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateField(msg)
}

// Status reports the terminal state after the program has finished.
func (m Model) Status() Status {
	return m.status
}

// Result returns the field text at submission time.
func (m Model) Result() string {
	return m.query.Raw()
}

// FatalErr returns the error behind StatusFatal.
func (m Model) FatalErr() error {
	return m.fatalErr
}

func (m Model) readTick() tea.Cmd {
	return tea.Tick(m.opts.PollInterval, func(time.Time) tea.Msg {
		return readTickMsg{}
	})
}

// handleReadTick drains one reader batch. Each new item is appended with
// its visibility computed against the current filter text, so late
// arrivals appear correctly filtered without waiting for a refilter.
func (m Model) handleReadTick() (tea.Model, tea.Cmd) {
	items, done := m.rd.Drain(m.opts.ReadBatch)
	if len(items) > 0 {
		text := m.query.FilterText()
		for _, it := range items {
			idx := m.items.Append(it, match.Match(it, text))
			if m.icons != nil {
				if glyph, ok := m.icons.Lookup(it); ok {
					m.items.SetIcon(idx, glyph)
				}
			}
		}
		m.refreshRows()
		m.clampCursor()
	}
	if !done {
		return m, m.readTick()
	}

	// Stream finished: stop polling. Overflow is fatal, everything else
	// just ends ingestion and the UI lives on.
	m.readerDone = true
	if err := m.rd.Err(); err != nil {
		if errors.Is(err, reader.ErrOverflow) {
			m.status = StatusFatal
			m.fatalErr = err
			return m, tea.Quit
		}
		m.log.Warn("input closed", "err", err)
	} else {
		m.log.Debug("input drained", "items", m.items.Len())
	}
	return m, nil
}

// handleRefilter applies a fired visibility pass, unless a newer one has
// been scheduled since.
func (m Model) handleRefilter(msg refilterMsg) (tea.Model, tea.Cmd) {
	if !m.sched.current(msg.gen) {
		return m, nil
	}
	changed, touched := m.sched.apply(m.items, m.query.FilterText())
	if !touched {
		return m, nil
	}
	m.refreshRows()
	m.clampCursor()
	if changed {
		// The filter text changed, so any multi-select marks are stale.
		clear(m.marks)
		m.maybeComplete()
	}
	return m, nil
}

// maybeComplete proposes an in-line completion of the filter text, if the
// completion preconditions hold and the visible rows agree on a common
// extension.
func (m *Model) maybeComplete() {
	if !canComplete(m.query) {
		return
	}
	tail, ok := completionTail(visibleTextsOf(m.items, m.rows), m.query.FilterText())
	if !ok {
		return
	}
	m.query.filtering = false
	m.query.ApplyProposal(tail)
	m.syncField()
	m.query.filtering = true
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.status = StatusCancelled
		return m, tea.Quit
	case "enter":
		m.status = StatusSubmitted
		return m, tea.Quit
	}
	if m.focus == focusList {
		return m.handleListKey(msg)
	}
	return m.handleFieldKey(msg)
}

func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "pgdown":
		return m.focusList()
	case "right", "end":
		if m.query.HasSelection() {
			m.query.AcceptProposal()
			m.syncField()
			return m, m.sched.schedule()
		}
	case "left":
		if m.query.HasSelection() {
			m.query.DropProposal()
			m.syncField()
			return m, nil
		}
	case "backspace":
		if m.query.HasSelection() {
			m.query.DropProposal()
			m.query.lastEdit = editDelete
			m.syncField()
			return m, nil
		}
	}

	// Typing over an active proposal replaces it.
	if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && m.query.HasSelection() {
		m.query.DropProposal()
		m.syncField()
	}
	return m.updateField(msg)
}

// updateField feeds a message to the text input and records any resulting
// user edit, scheduling a debounced refilter.
func (m Model) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.query.UserEdit(v, m.input.Position())
		if m.query.filtering {
			return m, tea.Batch(cmd, m.sched.schedule())
		}
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "ctrl+p":
		if m.cursor <= 0 {
			return m.focusField()
		}
		m.moveCursor(-1)
		return m, nil
	case "pgup":
		if m.cursor <= 0 {
			return m.focusField()
		}
		m.moveCursor(-listPage)
		return m, nil
	case "down", "ctrl+n":
		m.moveCursor(1)
		return m, nil
	case "pgdown":
		m.moveCursor(listPage)
		return m, nil
	case "home":
		m.moveCursor(-len(m.rows))
		return m, nil
	case "end":
		m.moveCursor(len(m.rows))
		return m, nil
	case "tab":
		return m.markCurrent()
	}

	// Typing takes precedence over navigation: send the key to the field.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace || msg.Type == tea.KeyBackspace {
		m.focus = focusField
		return m.handleFieldKey(msg)
	}
	return m, nil
}

// focusList moves focus into the list, placing the cursor on the first row
// when it is unset.
func (m Model) focusList() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	m.focus = focusList
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampCursor()
	m.applyListSelection()
	return m, nil
}

// focusField returns focus to the field and restores the user's original
// text with the cursor at the end.
func (m Model) focusField() (tea.Model, tea.Cmd) {
	m.focus = focusField
	m.query.filtering = false
	m.query.DropProposal()
	m.query.SetText(m.query.Original())
	m.syncField()
	m.query.filtering = true
	return m, m.sched.schedule()
}

func (m *Model) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, maxInt(len(m.rows)-1, 0))
	m.adjustOffset()
	m.applyListSelection()
}

// applyListSelection mirrors the list cursor into the field. In
// multi-select mode only the segment after the last output separator is
// rewritten. No refilter is scheduled for these programmatic edits.
func (m *Model) applyListSelection() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	text := m.items.Text(m.rows[m.cursor])
	m.query.filtering = false
	m.query.DropProposal()
	if m.opts.OutputSep != "" {
		m.query.SetText(m.query.ConfirmedPrefix() + text)
	} else {
		m.query.SetText(text)
	}
	m.syncField()
	m.query.filtering = true
}

// markCurrent accepts the current segment in multi-select mode and starts
// the next one by appending the output separator.
func (m Model) markCurrent() (tea.Model, tea.Cmd) {
	if m.opts.OutputSep == "" || m.cursor < 0 || m.cursor >= len(m.rows) {
		return m, nil
	}
	m.marks[m.rows[m.cursor]] = true
	m.query.filtering = false
	m.query.SetText(m.query.Raw() + m.opts.OutputSep)
	m.syncField()
	m.query.filtering = true
	return m, nil
}

// syncField pushes the query mirror into the text input, leaving the
// visible cursor at the start of any proposal tail.
func (m *Model) syncField() {
	m.input.SetValue(m.query.raw)
	m.input.SetCursor(m.query.selFrom)
}

func (m *Model) refreshRows() {
	m.rows = m.view.VisibleIndices()
}

func visibleTextsOf(s *store.Store, rows []int) []string {
	out := make([]string, len(rows))
	for i, idx := range rows {
		out[i] = s.Text(idx)
	}
	return out
}

func (m *Model) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = -1
		m.offset = 0
		if m.focus == focusList {
			m.focus = focusField
		}
		return
	}
	if m.cursor >= 0 {
		m.cursor = clamp(m.cursor, 0, len(m.rows)-1)
	}
	m.adjustOffset()
}

// adjustOffset keeps the cursor inside the viewport.
func (m *Model) adjustOffset() {
	viewHeight := m.listHeight()
	if viewHeight <= 0 || m.cursor < 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+viewHeight {
		m.offset = m.cursor - viewHeight + 1
	}
	m.offset = clamp(m.offset, 0, maxInt(len(m.rows)-viewHeight, 0))
}
