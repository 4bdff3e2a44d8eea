package startup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
)

func TestDecodeFile_ByExtension(t *testing.T) {
	yamlDoc := []byte("siteTitle: From YAML\nsections:\n  - type: qa\n    items:\n      - q: Why?\n        a: Because.\n")
	doc, err := DecodeFile("page.yml", yamlDoc)
	require.NoError(t, err)
	assert.Equal(t, "From YAML", doc.SiteTitle)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "faq", doc.Sections[0].Type)

	doc, err = DecodeFile("page.JSON", []byte(`{"siteTitle":"From JSON","sections":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "From JSON", doc.SiteTitle)

	_, err = DecodeFile("page.json", yamlDoc)
	assert.ErrorIs(t, err, normalize.ErrMalformedDocument)
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sections":[{"id":2,"type":"text","text":"hi"}]}`), 0644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, 2, doc.Sections[0].ID)

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestInitialDocument_FallsBackToDefault(t *testing.T) {
	doc, source, err := initialDocument(Options{})
	require.NoError(t, err)
	assert.Equal(t, "default", source)
	assert.NotEmpty(t, doc.Sections)
}
