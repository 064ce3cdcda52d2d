package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

const testSettle = 50 * time.Millisecond

func startWatcher(t *testing.T, dir string) (<-chan domain.UploadFile, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	files, err := NewWatcher(testSettle).Watch(ctx, dir)
	require.NoError(t, err)
	require.NotNil(t, files)
	return files, cancel
}

func TestNewWatcher_DefaultSettle(t *testing.T) {
	assert.Equal(t, DefaultSettle, NewWatcher(0).settle)
	assert.Equal(t, time.Second, NewWatcher(time.Second).settle)
}

func TestWatcher_EmitsNewFile(t *testing.T) {
	dir := t.TempDir()
	files, _ := startWatcher(t, dir)

	path := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0600))

	select {
	case f := <-files:
		assert.Equal(t, "invoice.pdf", f.Name)
		assert.Equal(t, path, f.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for dropped file")
	}
}

func TestWatcher_CoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	files, _ := startWatcher(t, dir)

	path := filepath.Join(dir, "memo.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := f.WriteString("line\n")
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())

	select {
	case got := <-files:
		assert.Equal(t, "memo.txt", got.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for dropped file")
	}

	select {
	case extra := <-files:
		t.Fatalf("unexpected second emission for %s", extra.Name)
	case <-time.After(4 * testSettle):
	}
}

func TestWatcher_SkipsHiddenFilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	files, _ := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".partial"), []byte("x"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visible.txt"), []byte("x"), 0600))

	select {
	case f := <-files:
		assert.Equal(t, "visible.txt", f.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for dropped file")
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	files, cancel := startWatcher(t, t.TempDir())

	cancel()

	select {
	case _, ok := <-files:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcher_InvalidDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0600))

	_, err := NewWatcher(testSettle).Watch(context.Background(), filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewWatcher(testSettle).Watch(context.Background(), file)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{".hidden", true},
		{"/inbox/.invoice.pdf.crdownload", true},
		{"/inbox/invoice.pdf", false},
		{"/home/user/.idms/inbox/invoice.pdf", false},
		{"invoice.pdf", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHidden(tt.path))
		})
	}
}

func TestHandleFsEvent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.pdf")
	hidden := filepath.Join(dir, ".a.pdf")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0600))
	require.NoError(t, os.WriteFile(hidden, []byte("a"), 0600))
	require.NoError(t, os.Mkdir(sub, 0700))

	tests := []struct {
		name string
		path string
		op   fsnotify.Op
		want bool
	}{
		{"create file", file, fsnotify.Create, true},
		{"write file", file, fsnotify.Write, true},
		{"chmod file", file, fsnotify.Chmod, false},
		{"remove file", filepath.Join(dir, "gone.pdf"), fsnotify.Remove, false},
		{"rename file", file, fsnotify.Rename, false},
		{"create directory", sub, fsnotify.Create, false},
		{"create hidden", hidden, fsnotify.Create, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := handleFsEvent(fsnotify.Event{Name: tt.path, Op: tt.op})
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.path, path)
			}
		})
	}
}
