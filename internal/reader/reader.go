// Package reader frames a byte stream into items on a configurable
// separator and hands them to the event loop in bounded batches, so the UI
// stays responsive however fast or slow the producer is.
package reader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrOverflow is reported when a single item exceeds the buffer capacity.
// It is fatal: the controller surfaces it as exit code 2.
var ErrOverflow = errors.New("item exceeds buffer capacity")

const (
	// DefaultBatch is how many items a single Drain call may deliver.
	DefaultBatch = 20

	// DefaultBufCap bounds the size of a single item.
	DefaultBufCap = 64 * 1024

	itemQueueLen = 256
)

// Reader ingests a separator-framed stream. A single goroutine performs the
// blocking reads and queues framed items; the event loop polls the queue
// with Drain, which never blocks. Once Drain reports done the reader is
// finished and Err holds the terminal condition.
type Reader struct {
	items    chan string
	stop     chan struct{}
	stopOnce sync.Once
	err      error // written before items is closed, read after
	bufCap   int
}

// New starts framing src on the given separator. An empty separator frames
// on newlines. bufCap <= 0 selects DefaultBufCap.
func New(src io.Reader, separator string, bufCap int) *Reader {
	if separator == "" {
		separator = "\n"
	}
	if bufCap <= 0 {
		bufCap = DefaultBufCap
	}
	r := &Reader{
		items:  make(chan string, itemQueueLen),
		stop:   make(chan struct{}),
		bufCap: bufCap,
	}
	go r.run(src, []byte(separator))
	return r
}

func (r *Reader) run(src io.Reader, sep []byte) {
	defer close(r.items)
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, min(r.bufCap, 4096)), r.bufCap)
	sc.Split(splitOn(sep))
	for sc.Scan() {
		select {
		case r.items <- sc.Text():
		case <-r.stop:
			return
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("%w (capacity %d bytes)", ErrOverflow, r.bufCap)
		}
		r.err = err
	}
}

// Close releases the scanning goroutine if it is blocked handing off an
// item, e.g. when the UI exits mid-stream with a full queue. Items already
// queued remain drainable; a goroutine blocked inside src.Read stays there
// until the source produces or closes. Safe to call more than once.
func (r *Reader) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Drain receives up to max queued items without blocking and reports
// whether the stream has finished. After done, Err distinguishes a clean
// EOF from an overflow or read error.
func (r *Reader) Drain(max int) (items []string, done bool) {
	if max <= 0 {
		max = DefaultBatch
	}
	for len(items) < max {
		select {
		case item, ok := <-r.items:
			if !ok {
				return items, true
			}
			items = append(items, item)
		default:
			return items, false
		}
	}
	return items, false
}

// Err returns the terminal stream condition. It is meaningful only after
// Drain has reported done; nil means a clean EOF.
func (r *Reader) Err() error {
	return r.err
}

// splitOn returns a bufio.SplitFunc that frames on the given byte sequence.
// The final item need not be separator-terminated.
func splitOn(sep []byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.Index(data, sep); i >= 0 {
			return i + len(sep), data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
