package logging

import (
	"log/slog"
	"sync"
)

// LogEntry is one record as streamed to the editor.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Channel   string `json:"channel"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// AppliedFilters selects which entries a subscriber receives.
type AppliedFilters struct {
	Channel Channel // "all" or empty matches every channel
	Level   slog.Level
}

func (f AppliedFilters) match(e LogEntry) bool {
	if f.Channel != "" && f.Channel != "all" && f.Channel != Channel(e.Channel) {
		return false
	}
	return ParseLevel(e.Level) >= f.Level
}

type subscriber struct {
	ch      chan LogEntry
	filters AppliedFilters
}

// LogFeed fans log entries out to subscribers. Slow subscribers lose
// entries rather than blocking the logger.
type LogFeed struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	buffer int
}

// NewLogFeed creates a feed whose subscribers buffer up to buffer entries.
func NewLogFeed(buffer int) *LogFeed {
	if buffer <= 0 {
		buffer = 100
	}
	return &LogFeed{subs: make(map[*subscriber]struct{}), buffer: buffer}
}

// Subscribe registers a subscriber. The returned cancel func closes the
// channel and must be called once.
func (f *LogFeed) Subscribe(filters AppliedFilters) (<-chan LogEntry, func()) {
	s := &subscriber{ch: make(chan LogEntry, f.buffer), filters: filters}
	f.mu.Lock()
	f.subs[s] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, s)
			close(s.ch)
			f.mu.Unlock()
		})
	}
}

// Publish delivers entry to every matching subscriber without blocking.
func (f *LogFeed) Publish(entry LogEntry) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for s := range f.subs {
		if !s.filters.match(entry) {
			continue
		}
		select {
		case s.ch <- entry:
		default:
		}
	}
}

// Subscribers reports the number of live subscribers.
func (f *LogFeed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}
