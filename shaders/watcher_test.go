package shaders

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {

	dir := t.TempDir()
	watched := filepath.Join(dir, "quad.shader")
	other := filepath.Join(dir, "other.shader")
	require.NoError(t, os.WriteFile(watched, []byte(basicShader), 0644))
	require.NoError(t, os.WriteFile(other, []byte(basicShader), 0644))

	w, err := NewWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Add(watched))
	require.NoError(t, w.Add(watched))

	// Several writes in a row should be reported once
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(watched, []byte(basicShader+"\n"), 0644))
	}
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))

	select {
	case path := <-w.Changed():
		assert.Equal(t, watched, path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shader change")
	}

	select {
	case path := <-w.Changed():
		t.Fatalf("unexpected second change for '%s'", path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {

	w, err := NewWatcher(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatcherAddRetriesAfterFailure(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "later")
	path := filepath.Join(dir, "quad.shader")

	w, err := NewWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// Directory doesn't exist yet
	require.Error(t, w.Add(path))
	require.Error(t, w.Add(path))
	assert.False(t, w.isWatched(path))

	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, w.Add(path))
	assert.True(t, w.isWatched(path))

	require.NoError(t, os.WriteFile(path, []byte(basicShader), 0644))

	select {
	case changed := <-w.Changed():
		assert.Equal(t, path, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shader change")
	}
}
