package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level7.yaml"), []byte("name: level7\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "level7", name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level file")
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Empty(t, w.Drain())
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestDebouncer(t *testing.T) {
	d := newDebouncer(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.True(t, d.allow("a.yaml", t0))
	assert.False(t, d.allow("a.yaml", t0.Add(50*time.Millisecond)))
	assert.True(t, d.allow("b.yaml", t0.Add(50*time.Millisecond)))
	assert.Len(t, d.last, 2)

	// a is past the window and pruned; b is still within it
	assert.True(t, d.allow("a.yaml", t0.Add(120*time.Millisecond)))
	assert.Len(t, d.last, 2)

	// A later event for another name prunes both stale entries
	assert.True(t, d.allow("c.yaml", t0.Add(time.Second)))
	assert.Len(t, d.last, 1)
	assert.Contains(t, d.last, "c.yaml")
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "level2", levelName("/a/b/level2.yaml"))
	assert.True(t, isLevelFile("x.YML"))
	assert.False(t, isLevelFile("x.json"))
}
