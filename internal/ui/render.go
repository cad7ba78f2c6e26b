package ui

import (
	"fmt"
	"strings"
	"sync"
)

var builderPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

func getBuilder() *strings.Builder {
	return builderPool.Get().(*strings.Builder)
}

func putBuilder(b *strings.Builder) {
	b.Reset()
	builderPool.Put(b)
}

// View implements tea.Model
func (m Model) View() string {
	if m.status != StatusRunning {
		return ""
	}
	width := maxInt(m.width, 40)

	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(m.renderField())
	b.WriteString("\n")

	if !m.listHidden() {
		b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
		b.WriteString("\n")
		m.renderList(b, width)
		b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}
	return b.String()
}

// listHidden reports whether the list should be suppressed. Minimal mode
// keeps it hidden until something has been typed.
func (m Model) listHidden() bool {
	return m.opts.Minimal && m.query.Raw() == ""
}

func (m Model) renderField() string {
	line := m.input.View()
	if m.opts.Label != "" {
		line = styles.Label.Render(m.opts.Label) + " " + line
	}
	return line
}

func (m Model) renderList(b *strings.Builder, width int) {
	viewHeight := m.listHeight()
	end := minInt(m.offset+viewHeight, len(m.rows))

	for i := m.offset; i < end; i++ {
		idx := m.rows[i]
		var line strings.Builder

		if m.focus == focusList && i == m.cursor {
			line.WriteString(styles.Cursor.Render("▶ "))
		} else {
			line.WriteString("  ")
		}
		if m.marks[idx] {
			mark := styles.Marked
			if m.focus == focusList && i == m.cursor {
				// Keep the mark on the cursor row's highlight background.
				mark = styles.WithSelection(mark)
			}
			line.WriteString(mark.Render("✓ "))
		} else if m.opts.OutputSep != "" {
			line.WriteString("  ")
		}
		if m.icons != nil {
			if glyph, ok := m.items.Icon(idx); ok {
				line.WriteString(string(glyph))
			} else {
				line.WriteString(" ")
			}
			line.WriteString(" ")
		}
		text := truncateMiddle(m.items.Text(idx), maxInt(width-6, 10))
		if m.focus == focusList && i == m.cursor {
			line.WriteString(styles.Selected.Render(text))
		} else {
			line.WriteString(styles.Item.Render(text))
		}
		b.WriteString(line.String())
		b.WriteString("\n")
	}
	for i := end - m.offset; i < viewHeight; i++ {
		b.WriteString("\n")
	}
}

func (m Model) renderFooter() string {
	counts := fmt.Sprintf("%d/%d", len(m.rows), m.items.Len())
	hints := "ESC cancel • Enter accept"
	if m.opts.OutputSep != "" {
		hints = "Tab mark • " + hints
	}
	if !m.readerDone {
		counts += " …"
	}
	return styles.Dim.Render("  " + counts + " • " + hints)
}

// listHeight is the number of item rows that fit between the field line
// and the footer.
func (m Model) listHeight() int {
	height := m.height
	if height <= 0 {
		height = 24
	}
	return maxInt(height-4, 1)
}

// truncateMiddle shortens s to at most max bytes, eliding the middle so
// both the head and the tail of long entries stay readable.
func truncateMiddle(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	head := (max - 1) / 2
	tail := max - 1 - head
	return s[:head] + "…" + s[len(s)-tail:]
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
