package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tmenu/internal/logger"
	"tmenu/internal/reader"
)

// Run reads items from in and drives a picker session to completion,
// returning the final model. Callers inspect Status, Result and FatalErr.
func Run(opts Options, in io.Reader) (Model, error) {
	rd := reader.New(in, opts.InputSep, opts.BufferSize)
	defer rd.Close()
	m := NewModel(opts, rd, logger.New("tmenu"))

	ttyIn, ttyOut, cleanup, err := openTTY()
	if err != nil {
		return m, err
	}
	defer cleanup()

	RefreshStyles()
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(ttyIn),
		tea.WithOutput(ttyOut),
	)
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("run ui: %w", err)
	}
	return final.(Model), nil
}

// openTTY returns the terminal handles for the UI. stdin carries the item
// stream and stdout the final submission, so keyboard input always comes
// from /dev/tty, and rendering goes to stdout only when stdout is itself a
// terminal (i.e. output is not being captured).
func openTTY() (in, out *os.File, cleanup func(), err error) {
	var closers []func()
	cleanup = func() {
		for _, c := range closers {
			c()
		}
	}

	in, err = os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open tty: %w", err)
	}
	closers = append(closers, func() { in.Close() })

	if fi, serr := os.Stdout.Stat(); serr == nil && fi.Mode()&os.ModeCharDevice != 0 {
		out = os.Stdout
		return in, out, cleanup, nil
	}

	out, err = os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		out = os.Stderr
	} else {
		closers = append(closers, func() { out.Close() })
	}
	// Re-detect color capability against the real terminal rather than
	// the redirected stdout.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))
	return in, out, cleanup, nil
}
