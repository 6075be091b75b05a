package internal

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type watchOutcome struct {
	result *Result
	err    error
}

func TestEngineWatch(t *testing.T) {
	t.Parallel()

	tempDir := createTempDir(t, "watch_test")
	path := writeFile(t, tempDir, "watched.py", "def f():\n    pass\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outcomes := make(chan watchOutcome, 16)
	done := make(chan error, 1)
	go func() {
		done <- NewEngine(nil).Watch(ctx, path, func(r *Result, err error) {
			outcomes <- watchOutcome{r, err}
		})
	}()

	first := receive(t, outcomes)
	require.NoError(t, first.err)
	assert.Len(t, first.result.Issues, 1)

	// unrelated files in the same directory are ignored
	writeFile(t, tempDir, "other.py", "if x:\n    pass\n")
	require.NoError(t, os.WriteFile(path, []byte("def f():\n    pass\n\n\ndef g():\n    pass\n"), 0o644))

	second := receive(t, outcomes)
	require.NoError(t, second.err)
	assert.Equal(t, path, second.result.Filename)
	assert.Equal(t, []int{1, 5}, linesOf(second.result.Issues))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestEngineWatchMissingDirectory(t *testing.T) {
	t.Parallel()

	err := NewEngine(nil).Watch(context.Background(), "/does/not/exist/file.py", func(*Result, error) {})
	assert.Error(t, err)
}

func receive(t *testing.T, outcomes <-chan watchOutcome) watchOutcome {
	t.Helper()
	select {
	case o := <-outcomes:
		return o
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for analysis")
		return watchOutcome{}
	}
}
