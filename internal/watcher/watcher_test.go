package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, dir string, ignore []string) *atomic.Int32 {
	t.Helper()
	var count atomic.Int32
	w, err := New([]string{dir}, ignore, func() { count.Add(1) })
	require.NoError(t, err)
	w.SetDebounce(50 * time.Millisecond)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })
	return &count
}

func TestWatcher_TriggersOnBaseChange(t *testing.T) {
	dir := t.TempDir()
	count := startWatcher(t, dir, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "side_bar_base.json"), []byte("[]"), 0644))

	assert.Eventually(t, func() bool { return count.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	count := startWatcher(t, dir, nil)

	path := filepath.Join(dir, "side_bar_base.json")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
	}

	assert.Eventually(t, func() bool { return count.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestWatcher_IgnoresMenuFile(t *testing.T) {
	dir := t.TempDir()
	menu := filepath.Join(dir, "Side Bar.sublime-menu")
	count := startWatcher(t, dir, []string{menu})

	require.NoError(t, os.WriteFile(menu, []byte("[]"), 0644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), count.Load())
}

func TestWatcher_StartFailsOnMissingDir(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "missing")}, nil, func() {})
	require.NoError(t, err)
	assert.Error(t, w.Start())
}
