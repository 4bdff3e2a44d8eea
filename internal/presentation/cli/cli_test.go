package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `siteTitle: CLI Page
sections:
  - id: 1
    type: text
    text: Hello there
  - id: 2
    type: qa
    items:
      - q: First?
        a: Yes.
  - id: 3
    type: hologram
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))
	return path
}

func TestNormalizeCommand(t *testing.T) {
	out, errOut, err := run(t, "normalize", writeDoc(t))
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "faq"`)
	assert.Contains(t, out, `"siteTitle": "CLI Page"`)
	assert.Contains(t, errOut, `aliased: section 2 "qa" -> "faq"`)
	assert.Contains(t, errOut, `unknown: section 3 "hologram"`)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "export", writeDoc(t), "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "config.json")

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Hello there")
}

func TestRenderCommand_Select(t *testing.T) {
	out, _, err := run(t, "render", writeDoc(t), "--viewport", "mobile", "--select", `section[data-section-type="faq"]`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<section"))
	assert.Contains(t, out, "First?")
	assert.NotContains(t, out, "Hello there")

	_, _, err = run(t, "render", writeDoc(t), "--select", "table.nothing")
	assert.Error(t, err)
}

func TestTypesCommand(t *testing.T) {
	out, _, err := run(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "speech_bubble")

	out, _, err = run(t, "types", "--aliases")
	require.NoError(t, err)
	assert.Contains(t, out, "qa")
}

func TestServeCommand_WatchNeedsDoc(t *testing.T) {
	_, _, err := run(t, "serve", "--watch")
	assert.ErrorIs(t, err, errWatchNeedsDoc)
}
