// Package config provides centralized default values for tractpage
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Settings mirrors the optional tractpage.toml file. Keys map onto the
// environment variables read below; the environment always wins.
type Settings struct {
	Server struct {
		Port           string   `toml:"port"`
		AllowedOrigins []string `toml:"allowed_origins"`
	} `toml:"server"`
	Paths struct {
		DraftDir  string `toml:"draft_dir"`
		OutputDir string `toml:"output_dir"`
	} `toml:"paths"`
	Export struct {
		TailwindCDN string `toml:"tailwind_cdn"`
	} `toml:"export"`
	Preview struct {
		Viewport string `toml:"viewport"`
	} `toml:"preview"`
	Log struct {
		Dir    string `toml:"dir"`
		Format string `toml:"format"`
		Level  string `toml:"level"`
		ToFile *bool  `toml:"to_file"`
	} `toml:"log"`
}

// settingsEnv lists the environment variable each settings key feeds.
func (s Settings) env() map[string]string {
	out := map[string]string{
		"PORT":             s.Server.Port,
		"CORS_ORIGINS":     strings.Join(s.Server.AllowedOrigins, ","),
		"DRAFT_DIR":        s.Paths.DraftDir,
		"OUTPUT_DIR":       s.Paths.OutputDir,
		"TAILWIND_CDN":     s.Export.TailwindCDN,
		"DEFAULT_VIEWPORT": s.Preview.Viewport,
		"LOG_DIR":          s.Log.Dir,
		"LOG_FORMAT":       s.Log.Format,
		"LOG_LEVEL":        s.Log.Level,
	}
	if s.Log.ToFile != nil {
		out["LOG_TO_FILE"] = strconv.FormatBool(*s.Log.ToFile)
	}
	return out
}

// LoadSettings reads a settings file. A missing file yields zero settings.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// applySettings exports settings as environment defaults without overriding
// anything already set.
func applySettings(s Settings) {
	for key, val := range s.env() {
		if val == "" || os.Getenv(key) != "" {
			continue
		}
		os.Setenv(key, val)
	}
}

func loadEnvFile() {
	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(); err == nil {
		log.Println("Loading configuration overrides from .env file...")
	}

	path := getEnvString("TRACTPAGE_SETTINGS", "tractpage.toml")
	s, err := LoadSettings(path)
	if err != nil {
		log.Printf("Ignoring settings file %s: %v", path, err)
		return
	}
	applySettings(s)
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var (
	// Server Configuration
	Port              string
	ServerReadTimeout time.Duration
	ServerIdleTimeout time.Duration
	AllowedOrigins    []string

	// Live Preview
	DefaultViewport   string
	WSPingInterval    time.Duration
	WSWriteTimeout    time.Duration
	WSMaxMessageBytes int

	// Document Storage
	DraftDir      string
	DraftDebounce time.Duration
	WatchDebounce time.Duration
	MaxImportMB   int

	// Export
	OutputDir   string
	TailwindCDN string

	// Logging
	LogDir    string
	LogFormat string
	LogLevel  string
	LogToFile bool
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	AllowedOrigins = getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"})

	// Live Preview
	DefaultViewport = getEnvString("DEFAULT_VIEWPORT", "desktop")
	WSPingInterval = time.Duration(getEnvInt("WS_PING_INTERVAL_SECONDS", 30)) * time.Second
	WSWriteTimeout = time.Duration(getEnvInt("WS_WRITE_TIMEOUT_SECONDS", 10)) * time.Second
	WSMaxMessageBytes = getEnvInt("WS_MAX_MESSAGE_BYTES", 4096)

	// Document Storage
	DraftDir = getEnvString("DRAFT_DIR", ".tractpage")
	DraftDebounce = getEnvDuration("DRAFT_DEBOUNCE", 2*time.Second)
	WatchDebounce = getEnvDuration("WATCH_DEBOUNCE", 200*time.Millisecond)
	MaxImportMB = getEnvInt("MAX_IMPORT_MB", 8)

	// Export
	OutputDir = getEnvString("OUTPUT_DIR", "dist")
	TailwindCDN = getEnvString("TAILWIND_CDN", "https://cdn.tailwindcss.com")

	// Logging
	LogDir = getEnvString("LOG_DIR", "logs")
	LogFormat = getEnvString("LOG_FORMAT", "text")
	LogLevel = getEnvString("LOG_LEVEL", "INFO")
	LogToFile = getEnvBool("LOG_TO_FILE", false)
}
