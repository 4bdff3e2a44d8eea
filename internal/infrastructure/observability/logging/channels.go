// Package logging provides structured logging channels for tractpage
// operations.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

// Channel represents a logical logging channel for one part of the system
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Document channels
	ChannelContent Channel = "content" // Document edits, imports and ingest
	ChannelRender  Channel = "render"  // Live and static rendering
	ChannelExport  Channel = "export"  // Export downloads and files

	// Editor surfaces
	ChannelPreview Channel = "preview" // Preview websocket traffic
	ChannelWatch   Channel = "watch"   // File watching
)

// AllChannels lists every channel in creation order.
var AllChannels = []Channel{
	ChannelSystem, ChannelStartup, ChannelShutdown,
	ChannelContent, ChannelRender, ChannelExport,
	ChannelPreview, ChannelWatch,
}

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	files    []*os.File
	config   *LoggerConfig
	configMu sync.RWMutex
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool
	OutputToConsole bool
	LogDirectory    string
	JSONFormat      bool
	IncludeSource   bool

	DefaultLevel  slog.Level
	ChannelLevels map[Channel]slog.Level

	// Console overrides stdout, mostly for tests.
	Console io.Writer
	// Feed receives a copy of every record when set.
	Feed *LogFeed
}

// DefaultLoggerConfig builds the configuration from pkg/config
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    config.LogToFile,
		OutputToConsole: true,
		LogDirectory:    config.LogDir,
		JSONFormat:      strings.EqualFold(config.LogFormat, "json"),
		DefaultLevel:    ParseLevel(config.LogLevel),
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name)))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(cfg *LoggerConfig) (*ChanneledLogger, error) {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	if cfg.ChannelLevels == nil {
		cfg.ChannelLevels = make(map[Channel]slog.Level)
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   cfg,
	}

	if cfg.OutputToFile {
		if err := os.MkdirAll(cfg.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	for _, channel := range AllChannels {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			logger.Close()
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

// NewDiscardLogger returns a logger that drops everything.
func NewDiscardLogger() *ChanneledLogger {
	l, _ := NewChanneledLogger(&LoggerConfig{OutputToConsole: true, Console: io.Discard})
	return l
}

// createChannelLogger creates a slog.Logger for a specific channel
func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	cl.configMu.RLock()
	defer cl.configMu.RUnlock()

	level := cl.config.DefaultLevel
	if channelLevel, exists := cl.config.ChannelLevels[channel]; exists {
		level = channelLevel
	}

	var writers []io.Writer
	if cl.config.OutputToConsole {
		if cl.config.Console != nil {
			writers = append(writers, cl.config.Console)
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	if cl.config.OutputToFile {
		path := filepath.Join(cl.config.LogDirectory, string(channel)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		cl.files = append(cl.files, file)
		writers = append(writers, file)
	}

	if cl.config.Feed != nil {
		writers = append(writers, NewFeedWriter(cl.config.Feed))
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cl.config.IncludeSource,
	}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler).With(slog.String("channel", string(channel))), nil
}

func (cl *ChanneledLogger) System() *slog.Logger   { return cl.GetChannel(ChannelSystem) }
func (cl *ChanneledLogger) Startup() *slog.Logger  { return cl.GetChannel(ChannelStartup) }
func (cl *ChanneledLogger) Shutdown() *slog.Logger { return cl.GetChannel(ChannelShutdown) }
func (cl *ChanneledLogger) Content() *slog.Logger  { return cl.GetChannel(ChannelContent) }
func (cl *ChanneledLogger) Render() *slog.Logger   { return cl.GetChannel(ChannelRender) }
func (cl *ChanneledLogger) Export() *slog.Logger   { return cl.GetChannel(ChannelExport) }
func (cl *ChanneledLogger) Preview() *slog.Logger  { return cl.GetChannel(ChannelPreview) }
func (cl *ChanneledLogger) Watch() *slog.Logger    { return cl.GetChannel(ChannelWatch) }

// GetChannel returns a logger for a specific channel
func (cl *ChanneledLogger) GetChannel(channel Channel) *slog.Logger {
	cl.configMu.RLock()
	defer cl.configMu.RUnlock()
	if logger, exists := cl.channels[channel]; exists {
		return logger
	}
	return cl.channels[ChannelSystem]
}

// WithOperation returns a logger with operation context
func (cl *ChanneledLogger) WithOperation(channel Channel, operation string) *slog.Logger {
	return cl.GetChannel(channel).With(slog.String("operation", operation))
}

// LogError logs an error with appropriate context and channel
func (cl *ChanneledLogger) LogError(channel Channel, operation string, err error, metadata map[string]any) {
	logger := cl.WithOperation(channel, operation).With(slog.String("error", err.Error()))
	for key, value := range metadata {
		logger = logger.With(slog.Any(key, value))
	}
	logger.Error("Operation failed")
}

// LogStartupPhase logs application startup phases
func (cl *ChanneledLogger) LogStartupPhase(phase string, duration time.Duration, success bool, metadata map[string]any) {
	logger := cl.Startup().With(
		slog.String("phase", phase),
		slog.Duration("duration", duration),
		slog.Bool("success", success),
	)
	for key, value := range metadata {
		logger = logger.With(slog.Any(key, value))
	}

	if success {
		logger.Info("Startup phase completed")
	} else {
		logger.Error("Startup phase failed")
	}
}

// SetChannelLevel dynamically sets the log level for a specific channel
func (cl *ChanneledLogger) SetChannelLevel(channel Channel, level slog.Level) error {
	cl.configMu.Lock()
	if _, exists := cl.channels[channel]; !exists {
		cl.configMu.Unlock()
		return fmt.Errorf("channel %s does not exist", channel)
	}
	cl.config.ChannelLevels[channel] = level
	cl.configMu.Unlock()

	newLogger, err := cl.createChannelLogger(channel)
	if err != nil {
		return fmt.Errorf("failed to recreate logger for channel %s: %w", channel, err)
	}

	cl.configMu.Lock()
	cl.channels[channel] = newLogger
	cl.configMu.Unlock()

	cl.System().Info("Channel log level updated",
		slog.String("channel", string(channel)),
		slog.String("level", level.String()),
	)
	return nil
}

// GetChannelLevels returns the current log levels for all channels.
func (cl *ChanneledLogger) GetChannelLevels() map[string]string {
	cl.configMu.RLock()
	defer cl.configMu.RUnlock()

	levels := make(map[string]string, len(cl.channels))
	for channel := range cl.channels {
		if level, ok := cl.config.ChannelLevels[channel]; ok {
			levels[string(channel)] = level.String()
		} else {
			levels[string(channel)] = cl.config.DefaultLevel.String()
		}
	}
	return levels
}

// Close releases log files.
func (cl *ChanneledLogger) Close() error {
	cl.configMu.Lock()
	defer cl.configMu.Unlock()
	var first error
	for _, f := range cl.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	cl.files = nil
	return first
}
