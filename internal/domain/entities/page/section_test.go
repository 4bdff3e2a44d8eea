package page

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "siteTitle": "Acme",
  "background": {"type": "color", "value": "#fff"},
  "fontSizes": {"heroTitle": 1.2, "heroSubtitle": 1, "sectionTitle": 1, "body": 0.9},
  "header": {"style": "solid", "layout": "center"},
  "menuItems": [{"id": 1, "label": "Top", "url": "#top"}],
  "hero": {"mediaType": "image", "url": "https://example.com/hero.jpg", "buttons": []},
  "theme": {"custom": true},
  "sections": [
    {"id": 1, "type": "text", "heading": "Hello", "text": "World", "align": "center", "title": "Hello"},
    {"id": 2, "type": "pricing", "design": "modern", "plans": [
      {"id": "a", "name": "Basic", "price": "$5", "features": ["one", "two"]},
      {"id": "b", "name": "Pro", "price": "$9", "features": [], "isFeatured": true}
    ]},
    {"id": 3, "type": "full_width", "children": [
      {"id": 1, "type": "image", "image": "https://example.com/a.png"},
      {"id": 2, "type": "mystery", "foo": [1, 2, 3]}
    ]},
    {"id": 4, "type": "team", "members": [{"id": 7, "name": "Ann", "image": {"src": "https://example.com/ann.png"}}]}
  ],
  "floatingCta": {"enabled": true, "text": "Buy"}
}`

func parseSample(t *testing.T) *Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &doc))
	return &doc
}

func TestDocument_Decode(t *testing.T) {
	doc := parseSample(t)

	require.Len(t, doc.Sections, 4)
	assert.Equal(t, map[string]any{"custom": true}, doc.Extra["theme"])
	assert.Equal(t, ItemID("1"), doc.MenuItems[0].ID)

	text, ok := doc.Sections[0].Content.(*TextContent)
	require.True(t, ok)
	assert.Equal(t, "Hello", text.Heading)
	assert.Equal(t, "center", text.Align)
	assert.Equal(t, "Hello", doc.Sections[0].Extra["title"])

	pricing := doc.Sections[1].Content.(*PricingContent)
	require.Len(t, pricing.Plans, 2)
	assert.True(t, pricing.Plans[1].IsFeatured)
	assert.NotNil(t, pricing.Plans[1].Features)
	assert.Empty(t, pricing.Plans[1].Features)

	container := doc.Sections[2]
	require.Len(t, container.Children, 2)
	img := container.Children[0].Content.(*ImageContent)
	assert.Equal(t, "https://example.com/a.png", img.Image.URL)
	_, unknown := container.Children[1].Content.(*UnknownContent)
	assert.True(t, unknown)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, container.Children[1].Extra["foo"])

	staff, ok := doc.Sections[3].Content.(*StaffContent)
	require.True(t, ok, "alias team should decode as staff")
	assert.Equal(t, "team", doc.Sections[3].Type)
	assert.Equal(t, ItemID("7"), staff.Members[0].ID)
	assert.Equal(t, "https://example.com/ann.png", staff.Members[0].Image.Src())
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := parseSample(t)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var again Document
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, doc, &again)

	data2, err := json.Marshal(&again)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(data2))
}

func TestDocument_DefaultRoundTrip(t *testing.T) {
	doc := DefaultDocument()
	clone, err := doc.Clone()
	require.NoError(t, err)

	data, err := json.Marshal(clone)
	require.NoError(t, err)
	var again Document
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, clone, &again)
}

func TestSection_TypeMismatchTolerated(t *testing.T) {
	var s Section
	err := json.Unmarshal([]byte(`{"id": 9, "type": "columns", "columnCount": "three", "heading": "Cols"}`), &s)
	require.NoError(t, err)
	cols := s.Content.(*ColumnsContent)
	assert.Equal(t, "Cols", cols.Heading)
	assert.Zero(t, cols.ColumnCount)
}

func TestImage_Present(t *testing.T) {
	var nilImage *Image
	assert.False(t, nilImage.Present())
	assert.False(t, (&Image{URL: "   "}).Present())
	assert.True(t, (&Image{URL: "https://x"}).Present())
}

func TestDocument_FindSection(t *testing.T) {
	doc := parseSample(t)
	found := doc.FindSection(3)
	require.NotNil(t, found)
	assert.Equal(t, "full_width", found.Type)
	assert.Nil(t, doc.FindSection(42))
	assert.Equal(t, 5, doc.NextSectionID())
}

func TestNewItemID_Unique(t *testing.T) {
	seen := map[ItemID]bool{}
	for i := 0; i < 100; i++ {
		id := NewItemID()
		require.False(t, seen[id])
		seen[id] = true
	}
}
