package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Missing(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Empty(t, s.Server.Port)
}

func TestLoadSettings_Parses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tractpage.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = "9090"
allowed_origins = ["http://a.test", "http://b.test"]

[export]
tailwind_cdn = "https://cdn.example.com/tw.js"

[log]
format = "json"
to_file = true
`), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, s.Server.AllowedOrigins)
	env := s.env()
	assert.Equal(t, "http://a.test,http://b.test", env["CORS_ORIGINS"])
	assert.Equal(t, "https://cdn.example.com/tw.js", env["TAILWIND_CDN"])
	assert.Equal(t, "true", env["LOG_TO_FILE"])
}

func TestLoadSettings_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport ="), 0o644))
	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestApplySettings_EnvironmentWins(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "from-env")
	t.Setenv("LOG_LEVEL", "")

	var s Settings
	s.Paths.OutputDir = "from-file"
	s.Log.Level = "DEBUG"
	applySettings(s)

	assert.Equal(t, "from-env", os.Getenv("OUTPUT_DIR"))
	assert.Equal(t, "DEBUG", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "DEBUG", getEnvString("LOG_LEVEL", "INFO"))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("TEST_LIST", " a, ,b ")
	assert.Equal(t, []string{"a", "b"}, getEnvList("TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, getEnvList("TEST_LIST_UNSET", []string{"x"}))
}
