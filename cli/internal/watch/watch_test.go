package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "schema.georm")
	require.NoError(t, os.WriteFile(file, []byte("entity A {}\n"), 0o644))

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(file, func() error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)
	defer w.Stop()

	w.Start()

	require.NoError(t, os.WriteFile(file, []byte("entity B {}\n"), 0o644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire after a write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "schema.georm")
	require.NoError(t, os.WriteFile(file, []byte("entity A {}\n"), 0o644))

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(file, func() error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)
	defer w.Stop()

	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-fired:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(debounce + 200*time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "schema.georm"), func() error { return nil })
	require.Error(t, err)
}
