package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

func TestFileWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFileWatcher(filepath.Join(dir, "page.json"), time.Millisecond, nil, logging.NewDiscardLogger())
	require.NoError(t, err)

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: filepath.Join(dir, "page.json"), Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: filepath.Join(dir, "page.json"), Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: filepath.Join(dir, "page.json"), Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.ev))
		})
	}
}

func TestFileWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sections":[]}`), 0644))

	var mu sync.Mutex
	var got []string
	w, err := NewFileWatcher(path, 20*time.Millisecond, func(data []byte) error {
		mu.Lock()
		got = append(got, string(data))
		mu.Unlock()
		return nil
	}, logging.NewDiscardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		assert.NoError(t, <-done)
	}()

	// give the watcher time to register before writing
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"siteTitle":"new","sections":[]}`), 0644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0 && got[len(got)-1] == `{"siteTitle":"new","sections":[]}`
	}, 2*time.Second, 10*time.Millisecond)
}
