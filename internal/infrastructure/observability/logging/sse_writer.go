package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"time"
)

// FeedWriter is an io.Writer that turns handler output into LogEntry values
// for a LogFeed. It understands both JSON and text handler lines.
type FeedWriter struct {
	feed *LogFeed
}

// NewFeedWriter creates a writer publishing to feed.
func NewFeedWriter(feed *LogFeed) *FeedWriter {
	return &FeedWriter{feed: feed}
}

func (w *FeedWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimSpace(p), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		w.feed.Publish(parseLine(line))
	}
	return len(p), nil
}

func parseLine(line []byte) LogEntry {
	var raw map[string]any
	if json.Unmarshal(line, &raw) == nil {
		return LogEntry{
			Timestamp: getString(raw, "time"),
			Level:     getString(raw, "level"),
			Channel:   getString(raw, "channel"),
			Message:   getString(raw, "msg"),
		}
	}

	fields := textFields(string(line))
	entry := LogEntry{
		Timestamp: fields["time"],
		Level:     fields["level"],
		Channel:   fields["channel"],
		Message:   fields["msg"],
	}
	if entry.Message == "" {
		entry.Message = string(line)
	}
	if entry.Level == "" {
		entry.Level = slog.LevelInfo.String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return entry
}

// textFields splits a slog text line into key=value pairs, honoring quotes.
func textFields(line string) map[string]string {
	out := map[string]string{}
	for len(line) > 0 {
		line = strings.TrimLeft(line, " ")
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			break
		}
		key := line[:eq]
		rest := line[eq+1:]
		var val string
		if strings.HasPrefix(rest, `"`) {
			end := 1
			for end < len(rest) && (rest[end] != '"' || rest[end-1] == '\\') {
				end++
			}
			if end >= len(rest) {
				end = len(rest) - 1
			}
			quoted := rest[:end+1]
			if s, err := unquote(quoted); err == nil {
				val = s
			} else {
				val = strings.Trim(quoted, `"`)
			}
			rest = rest[end+1:]
		} else if sp := strings.IndexByte(rest, ' '); sp >= 0 {
			val, rest = rest[:sp], rest[sp:]
		} else {
			val, rest = rest, ""
		}
		out[key] = val
		line = rest
	}
	return out
}

func unquote(s string) (string, error) {
	var out string
	err := json.Unmarshal([]byte(s), &out)
	return out, err
}

func getString(data map[string]any, key string) string {
	if val, ok := data[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}
