// Package draft keeps an autosaved copy of the working document on disk so
// an editor restart resumes where it left off.
package draft

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/templates"
)

// FileName is the draft file inside the draft directory.
const FileName = "draft.json"

// ErrNoDraft is returned by Load when nothing has been saved yet.
var ErrNoDraft = errors.New("no saved draft")

// Store reads and writes the draft file.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the draft file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Save writes doc atomically.
func (s *Store) Save(doc *page.Document) error {
	out, err := templates.ExportConfig(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create draft directory: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, ".draft-*.json")
	if err != nil {
		return fmt.Errorf("failed to create draft file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(out); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write draft: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return os.Rename(tmp.Name(), s.Path())
}

// Load reads the draft back through normalization.
func (s *Store) Load() (*page.Document, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	return normalize.Decode(data)
}

// Clear removes the draft file.
func (s *Store) Clear() error {
	err := os.Remove(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Autosaver coalesces bursts of edits into one write after a quiet period.
type Autosaver struct {
	store  *Store
	delay  time.Duration
	logger *logging.ChanneledLogger

	// saveMu orders writes so a newer snapshot is never replaced by an older one.
	saveMu sync.Mutex

	mu      sync.Mutex
	pending *page.Document
	timer   *time.Timer
	saves   int
}

// NewAutosaver creates an autosaver writing to store delay after the last
// scheduled document.
func NewAutosaver(store *Store, delay time.Duration, logger *logging.ChanneledLogger) *Autosaver {
	return &Autosaver{store: store, delay: delay, logger: logger}
}

// Schedule queues doc, replacing anything not yet written.
func (a *Autosaver) Schedule(doc *page.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = doc
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.Flush)
}

// Flush writes the pending document now.
func (a *Autosaver) Flush() {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	if doc == nil {
		return
	}

	if err := a.store.Save(doc); err != nil {
		a.logger.LogError(logging.ChannelContent, "autosave", err, map[string]any{"path": a.store.Path()})
		return
	}
	a.mu.Lock()
	a.saves++
	a.mu.Unlock()
	a.logger.Content().Debug("Draft saved", "path", a.store.Path())
}

// Saves reports how many writes have completed.
func (a *Autosaver) Saves() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saves
}

// Run blocks until ctx ends and then flushes.
func (a *Autosaver) Run(ctx context.Context) error {
	<-ctx.Done()
	a.Flush()
	return nil
}
