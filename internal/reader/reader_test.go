package reader

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainAll polls Drain until the stream finishes, like the event loop does.
func drainAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var all []string
	deadline := time.Now().Add(2 * time.Second)
	for {
		items, done := r.Drain(DefaultBatch)
		all = append(all, items...)
		if done {
			return all
		}
		if time.Now().After(deadline) {
			t.Fatal("reader did not finish")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestReaderFramesLines(t *testing.T) {
	r := New(strings.NewReader("apple\nbanana\napricot\n"), "\n", 0)
	assert.Equal(t, []string{"apple", "banana", "apricot"}, drainAll(t, r))
	assert.NoError(t, r.Err())
}

func TestReaderFinalItemWithoutSeparator(t *testing.T) {
	r := New(strings.NewReader("alpha\nbeta"), "\n", 0)
	assert.Equal(t, []string{"alpha", "beta"}, drainAll(t, r))
	assert.NoError(t, r.Err())
}

func TestReaderMultiByteSeparator(t *testing.T) {
	r := New(strings.NewReader("one::two::three"), "::", 0)
	assert.Equal(t, []string{"one", "two", "three"}, drainAll(t, r))
}

func TestReaderPreservesEmptyItemsAndWhitespace(t *testing.T) {
	r := New(strings.NewReader("a\n\n  b  \n"), "\n", 0)
	assert.Equal(t, []string{"a", "", "  b  "}, drainAll(t, r))
}

func TestReaderOverflow(t *testing.T) {
	long := strings.Repeat("x", 100)
	r := New(strings.NewReader(long), "\n", 64)

	var done bool
	deadline := time.Now().Add(2 * time.Second)
	for !done && time.Now().Before(deadline) {
		_, done = r.Drain(DefaultBatch)
		time.Sleep(time.Millisecond)
	}
	require.True(t, done)
	assert.ErrorIs(t, r.Err(), ErrOverflow)
}

func TestReaderReadError(t *testing.T) {
	r := New(io.MultiReader(strings.NewReader("ok\n"), failingReader{}), "\n", 0)
	items := drainAll(t, r)
	assert.Equal(t, []string{"ok"}, items)
	assert.Error(t, r.Err())
	assert.NotErrorIs(t, r.Err(), ErrOverflow)
}

func TestDrainBatchLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString("line\n")
	}
	r := New(strings.NewReader(b.String()), "\n", 0)

	// Give the goroutine a moment to queue more than one batch.
	require.Eventually(t, func() bool {
		items, _ := r.Drain(5)
		return len(items) == 5
	}, 2*time.Second, time.Millisecond)
}

// Close must unblock a producer stuck handing off items to a full queue,
// so an abandoned stream does not pin the goroutine.
func TestCloseReleasesBlockedProducer(t *testing.T) {
	total := itemQueueLen * 4
	var b strings.Builder
	for i := 0; i < total; i++ {
		b.WriteString("line\n")
	}
	r := New(strings.NewReader(b.String()), "\n", 0)

	// Wait until the queue has filled and the producer is parked on a send.
	require.Eventually(t, func() bool {
		items, _ := r.Drain(1)
		return len(items) == 1
	}, 2*time.Second, time.Millisecond)

	r.Close()

	// drainAll terminates because the producer gave up mid-stream; without
	// Close it would only finish after delivering every line.
	rest := drainAll(t, r)
	assert.Less(t, len(rest), total-1)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
