package logging

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestChanneledLogger_ChannelAttribute(t *testing.T) {
	var buf bytes.Buffer
	cl, err := NewChanneledLogger(&LoggerConfig{OutputToConsole: true, Console: &buf, JSONFormat: true})
	require.NoError(t, err)

	cl.Render().Info("rendered", "sections", 3)
	assert.Contains(t, buf.String(), `"channel":"render"`)
	assert.Contains(t, buf.String(), `"sections":3`)
}

func TestChanneledLogger_SetChannelLevel(t *testing.T) {
	var buf bytes.Buffer
	cl, err := NewChanneledLogger(&LoggerConfig{OutputToConsole: true, Console: &buf})
	require.NoError(t, err)

	cl.Watch().Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	require.NoError(t, cl.SetChannelLevel(ChannelWatch, slog.LevelDebug))
	cl.Watch().Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, "DEBUG", cl.GetChannelLevels()["watch"])
	assert.Error(t, cl.SetChannelLevel("nope", slog.LevelDebug))
}

func TestChanneledLogger_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	cl, err := NewChanneledLogger(&LoggerConfig{OutputToFile: true, LogDirectory: dir})
	require.NoError(t, err)
	cl.Export().Info("written")
	require.NoError(t, cl.Close())
	assert.FileExists(t, dir+"/export.log")
}

func TestLogFeed_Filters(t *testing.T) {
	feed := NewLogFeed(4)
	cl, err := NewChanneledLogger(&LoggerConfig{Feed: feed, DefaultLevel: slog.LevelDebug})
	require.NoError(t, err)

	entries, cancel := feed.Subscribe(AppliedFilters{Channel: ChannelContent, Level: slog.LevelInfo})
	defer cancel()

	cl.Render().Info("other channel")
	cl.Content().Debug("too quiet")
	cl.Content().Warn("section removed")

	select {
	case e := <-entries:
		assert.Equal(t, "section removed", e.Message)
		assert.Equal(t, "content", e.Channel)
		assert.Equal(t, "WARN", e.Level)
	case <-time.After(time.Second):
		t.Fatal("no entry delivered")
	}
	assert.Len(t, entries, 0)
}

func TestLogFeed_CancelCloses(t *testing.T) {
	feed := NewLogFeed(1)
	entries, cancel := feed.Subscribe(AppliedFilters{})
	assert.Equal(t, 1, feed.Subscribers())
	cancel()
	cancel()
	_, open := <-entries
	assert.False(t, open)
	assert.Equal(t, 0, feed.Subscribers())
}

func TestTextFields(t *testing.T) {
	f := textFields(`time=2024-01-01T00:00:00Z level=INFO msg="hello world" channel=render`)
	assert.Equal(t, "hello world", f["msg"])
	assert.Equal(t, "render", f["channel"])
	assert.Equal(t, "INFO", f["level"])
}
