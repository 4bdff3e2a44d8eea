package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
)

const messyDocument = `{
	"siteTitle": "Messy",
	"background": "url('https://cdn.example.com/bg.jpg')",
	"fontSizes": {"heroTitle": "1.4", "body": 0},
	"menuItems": [{"text": "Plans", "href": "#section-2"}, {"id": 4, "label": "FAQ", "url": "#faq"}],
	"hero": {"url": "https://example.com/own.jpg", "fallbackUrl": "https://example.com/fallback.jpg", "generatedUrl": {"src": "https://example.com/gen.jpg"}, "overlayOpacity": "40", "buttons": [{"label": "Go", "href": "#"}]},
	"sections": [
		{"type": "text", "title": "Hello", "content": "World", "align": "center", "style": {"backgroundColor": "#fafafa"}},
		{"id": "2", "type": "plans", "design": "Premium gold", "plans": [{"name": "A", "features": ["x"]}, {"title": "B", "isFeatured": true}]},
		{"id": 2, "type": "gallery", "design": "photo gallery", "columnCount": "3", "items": [{"heading": "One", "image": "  "}, "Two"]},
		{"type": "full_width", "bgImage": "url(https://example.com/band.jpg)", "bgOverlay": "0.5", "children": [
			{"id": 1, "type": "paragraph", "content": "inside"},
			{"type": "hero_image", "image": {"href": "https://example.com/pic.jpg", "alt": "pic"}}
		]},
		{"id": 9, "type": "qa", "items": [{"q": "Why?", "a": "Because."}]},
		{"id": 10, "type": "not_a_real_type", "whatever": [1, 2]},
		"garbage"
	]
}`

func parse(t *testing.T, s string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func sectionAt(t *testing.T, doc map[string]any, i int) map[string]any {
	t.Helper()
	sections, ok := doc["sections"].([]any)
	require.True(t, ok)
	require.Greater(t, len(sections), i)
	s, ok := sections[i].(map[string]any)
	require.True(t, ok)
	return s
}

func TestDocument_Idempotent(t *testing.T) {
	once := Document(parse(t, messyDocument))
	twice := Document(once)
	assert.Equal(t, once, twice)
}

func TestDocument_DoesNotMutateInput(t *testing.T) {
	raw := parse(t, messyDocument)
	before, err := json.Marshal(raw)
	require.NoError(t, err)

	Document(raw)

	after, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestDocument_SectionIDs(t *testing.T) {
	doc := Document(parse(t, messyDocument))

	sections := doc["sections"].([]any)
	require.Len(t, sections, 6, "non-object entries are dropped")

	var ids []float64
	var walk func(list []any)
	walk = func(list []any) {
		for _, v := range list {
			s := v.(map[string]any)
			ids = append(ids, s["id"].(float64))
			if children, ok := s["children"].([]any); ok {
				walk(children)
			}
		}
	}
	walk(sections)

	// 2, 1, 9 and 10 keep their ids; the duplicate 2 and the missing ids get
	// max+1 in walk order.
	assert.Equal(t, []float64{11, 2, 12, 13, 1, 14, 9, 10}, ids)
}

func TestSection_TextScenario(t *testing.T) {
	s := Section(map[string]any{"type": "text", "title": "Hello", "content": "World", "align": "center"})

	assert.Equal(t, "Hello", s["heading"])
	assert.Equal(t, "World", s["text"])
	assert.Equal(t, "Hello", s["title"], "aliasing is additive")
	assert.Equal(t, "center", s["align"])
	assert.NotContains(t, s, "bgType")
	assert.NotContains(t, s, "bgValue")
}

func TestSection_TypeAlias(t *testing.T) {
	assert.Equal(t, "staff", Section(map[string]any{"type": "team"})["type"])
	assert.Equal(t, "not_a_real_type", Section(map[string]any{"type": "not_a_real_type"})["type"])
}

func TestGuardImage(t *testing.T) {
	absent := []any{"", "   ", map[string]any{}, map[string]any{"url": ""}, map[string]any{"url": "  "}, nil, 42.0, []any{}}
	for _, in := range absent {
		s := Section(map[string]any{"type": "image", "image": in})
		assert.NotContains(t, s, "image", "input %#v", in)
	}

	cases := []struct {
		in   any
		want map[string]any
	}{
		{"https://x.test/a.png", map[string]any{"url": "https://x.test/a.png"}},
		{" url('https://x.test/b.png') ", map[string]any{"url": "https://x.test/b.png"}},
		{map[string]any{"src": "https://x.test/c.png", "alt": "c"}, map[string]any{"url": "https://x.test/c.png", "alt": "c"}},
		{map[string]any{"url": "", "href": "https://x.test/d.png"}, map[string]any{"url": "https://x.test/d.png"}},
	}
	for _, tc := range cases {
		s := Section(map[string]any{"type": "image", "image": tc.in})
		assert.Equal(t, tc.want, s["image"], "input %#v", tc.in)
	}

	staff := Section(map[string]any{"id": 3.0, "type": "staff", "members": []any{
		map[string]any{"name": "A", "image": ""},
		map[string]any{"name": "B", "image": "https://x.test/b.png"},
	}})
	members := staff["members"].([]any)
	assert.NotContains(t, members[0].(map[string]any), "image")
	assert.Equal(t, map[string]any{"url": "https://x.test/b.png"}, members[1].(map[string]any)["image"])
}

func TestItemIDs_Deterministic(t *testing.T) {
	raw := map[string]any{"id": 7.0, "type": "faq", "faqs": []any{
		map[string]any{"question": "a"},
		map[string]any{"id": "keep", "question": "b"},
		map[string]any{"id": "keep", "question": "c"},
		map[string]any{"question": "d"},
	}}

	first := Section(raw)
	second := Section(raw)
	assert.Equal(t, first, second)

	var ids []any
	for _, item := range first["faqs"].([]any) {
		ids = append(ids, item.(map[string]any)["id"])
	}
	assert.Equal(t, []any{"7-faqs-0", "keep", "7-faqs-2", "7-faqs-3"}, ids)

	assert.Equal(t, first, Section(first))
}

func TestBackground(t *testing.T) {
	tests := []struct {
		name      string
		in        map[string]any
		wantType  any
		wantValue any
	}{
		{"none", map[string]any{}, nil, nil},
		{"canonical colour", map[string]any{"bgType": "color", "bgValue": "#fff"}, "color", "#fff"},
		{"legacy bgImage", map[string]any{"bgImage": "url(\"https://x.test/a.jpg\")"}, "image", "https://x.test/a.jpg"},
		{"style image", map[string]any{"style": map[string]any{"backgroundImage": "url(https://x.test/b.jpg)"}}, "image", "https://x.test/b.jpg"},
		{"style colour", map[string]any{"style": map[string]any{"backgroundColor": "#123456"}}, "color", "#123456"},
		{"legacy colour", map[string]any{"backgroundColor": "red"}, "color", "red"},
		{"image beats colour", map[string]any{"bgType": "color", "bgValue": "#000", "bgImage": "https://x.test/c.jpg"}, "image", "https://x.test/c.jpg"},
		{"empty image cleared", map[string]any{"bgType": "image", "bgValue": "  "}, nil, nil},
		{"untyped url", map[string]any{"bgValue": "https://x.test/d.jpg"}, "image", "https://x.test/d.jpg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := map[string]any{"type": "text"}
			for k, v := range tc.in {
				in[k] = v
			}
			s := Section(in)
			assert.Equal(t, tc.wantType, s["bgType"])
			assert.Equal(t, tc.wantValue, s["bgValue"])
			assert.NotContains(t, s, "bgImage")
			assert.NotContains(t, s, "backgroundColor")
			assert.NotContains(t, s, "style")
		})
	}

	kept := Section(map[string]any{"type": "text", "style": map[string]any{"bgImage": "https://x.test/e.jpg", "fontWeight": "bold"}})
	assert.Equal(t, map[string]any{"fontWeight": "bold"}, kept["style"])
}

func TestBackground_OverlayClamped(t *testing.T) {
	assert.Equal(t, 0.5, Section(map[string]any{"type": "text", "bgOverlay": "0.5"})["bgOverlay"])
	assert.Equal(t, 0.4, Section(map[string]any{"type": "text", "bgOverlay": 40.0})["bgOverlay"])
	assert.Equal(t, 1.0, Section(map[string]any{"type": "text", "bgOverlay": 400.0})["bgOverlay"])
	assert.Equal(t, 0.0, Section(map[string]any{"type": "text", "bgOverlay": -1.0})["bgOverlay"])
	assert.Equal(t, 1.0, Section(map[string]any{"type": "text", "bgOverlay": 1.5})["bgOverlay"])
	assert.Equal(t, 1.0, Section(map[string]any{"type": "text", "bgOverlay": "1.5"})["bgOverlay"])
	assert.Equal(t, 0.015, Section(map[string]any{"type": "text", "bgOverlay": "1.5%"})["bgOverlay"])
	assert.Equal(t, 0.02, Section(map[string]any{"type": "text", "bgOverlay": 2.0})["bgOverlay"])

	once := Section(map[string]any{"type": "text", "bgOverlay": "60%"})
	assert.Equal(t, 0.6, once["bgOverlay"])
	assert.Equal(t, once, Section(once))
}

func TestHero_OverlayOpacityClamped(t *testing.T) {
	hero := func(v any) any {
		doc := Document(map[string]any{"sections": []any{}, "hero": map[string]any{"overlayOpacity": v}})
		return doc["hero"].(map[string]any)["overlayOpacity"]
	}
	assert.Equal(t, 1.0, hero(1.5))
	assert.Equal(t, 0.4, hero(40.0))
	assert.Equal(t, 0.25, hero("25%"))
}

func TestImageGuard_EmptyCSSURL(t *testing.T) {
	for _, v := range []any{"url()", "url( )", `url("")`, map[string]any{"url": "url()"}} {
		s := Section(map[string]any{"type": "image", "image": v})
		_, has := s["image"]
		assert.False(t, has, "%v", v)
	}
	bg := Section(map[string]any{"type": "text", "bgType": "image", "bgValue": "url()"})
	assert.NotContains(t, bg, "bgValue")
}

func TestVariantInference(t *testing.T) {
	tests := []struct {
		in    map[string]any
		field string
		want  string
	}{
		{map[string]any{"type": "columns", "design": "Photo Gallery"}, "colType", "image"},
		{map[string]any{"type": "columns", "design": "youtube row"}, "colType", "video"},
		{map[string]any{"type": "columns"}, "colType", "card"},
		{map[string]any{"type": "columns", "colType": "text", "design": "video"}, "colType", "text"},
		{map[string]any{"type": "process", "design": "vertical timeline"}, "stepType", "timeline"},
		{map[string]any{"type": "process", "design": "flat"}, "stepType", "numbered"},
		{map[string]any{"type": "review", "design": "speech bubbles"}, "layoutType", "bubble"},
		{map[string]any{"type": "review"}, "layoutType", "card"},
		{map[string]any{"type": "team", "design": "circle avatars"}, "layoutType", "circle"},
		{map[string]any{"type": "staff", "layoutType": "LIST"}, "layoutType", "list"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Section(tc.in)[tc.field], "input %v", tc.in)
	}
}

func TestDesignCanonicalization(t *testing.T) {
	tests := []struct {
		typ, design, want string
	}{
		{"pricing", "Modern", "modern"},
		{"pricing", "", "standard"},
		{"columns", "modern pop", "stylish"},
		{"faq", "Soft pastel", "gentle"},
		{"faq", "cyber", "cyber"},
		{"review", "neon night", "cyber"},
		{"staff", "earth tones", "earth"},
		{"process", "something else", "standard"},
		{"heading", "underline-bold", "underline"},
		{"heading", "plain", "simple"},
		{"image", "rounded corners", "rounded"},
		{"image", "photo frame", "polaroid"},
	}
	for _, tc := range tests {
		s := Section(map[string]any{"type": tc.typ, "design": tc.design})
		assert.Equal(t, tc.want, s["design"], "%s/%q", tc.typ, tc.design)
	}

	text := Section(map[string]any{"type": "text", "design": "anything"})
	assert.Equal(t, "anything", text["design"], "types without designs keep the field untouched")
}

func TestListAliasAndStringItems(t *testing.T) {
	s := Section(map[string]any{"id": 4.0, "type": "features", "features": []any{"Fast", map[string]any{"heading": "Safe", "description": "Very"}}})

	assert.Equal(t, "point_list", s["type"])
	assert.NotContains(t, s, "features")
	items := s["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, map[string]any{"text": "Fast", "id": "4-items-0"}, items[0])
	second := items[1].(map[string]any)
	assert.Equal(t, "Safe", second["title"])
	assert.Equal(t, "Very", second["text"])
}

func TestDocument_HeroAndFonts(t *testing.T) {
	doc := Document(parse(t, messyDocument))

	hero := doc["hero"].(map[string]any)
	assert.Equal(t, "https://example.com/gen.jpg", hero["url"])
	assert.Equal(t, "https://example.com/gen.jpg", hero["generatedUrl"])
	assert.Equal(t, "image", hero["mediaType"])
	assert.Equal(t, 0.4, hero["overlayOpacity"])
	button := hero["buttons"].([]any)[0].(map[string]any)
	assert.Equal(t, "Go", button["text"])
	assert.Equal(t, "hero-buttons-0", button["id"])

	assert.Equal(t, map[string]any{"heroTitle": 1.4, "heroSubtitle": 1.0, "sectionTitle": 1.0, "body": 1.0}, doc["fontSizes"])
	assert.Equal(t, map[string]any{"type": "image", "value": "https://cdn.example.com/bg.jpg"}, doc["background"])

	menu := doc["menuItems"].([]any)
	assert.Equal(t, map[string]any{"id": "menu-items-0", "text": "Plans", "href": "#section-2", "label": "Plans", "url": "#section-2"}, menu[0])
	assert.Equal(t, 4.0, menu[1].(map[string]any)["id"])

	fallback := Document(map[string]any{"sections": []any{}, "hero": map[string]any{"url": " ", "fallbackUrl": "https://example.com/f.mp4"}})
	hero = fallback["hero"].(map[string]any)
	assert.Equal(t, "https://example.com/f.mp4", hero["url"])
	assert.Equal(t, "video", hero["mediaType"])
}

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(messyDocument))
	require.NoError(t, err)

	require.Len(t, doc.Sections, 6)
	text, ok := doc.Sections[0].Content.(*page.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Hello", text.Heading)
	assert.Equal(t, "color", doc.Sections[0].BgType)
	assert.Equal(t, "#fafafa", doc.Sections[0].BgValue)

	pricing, ok := doc.Sections[1].Content.(*page.PricingContent)
	require.True(t, ok)
	assert.Equal(t, "luxury", pricing.Design)
	require.Len(t, pricing.Plans, 2)
	assert.Equal(t, "B", pricing.Plans[1].Name)
	assert.True(t, pricing.Plans[1].IsFeatured)

	columns, ok := doc.Sections[2].Content.(*page.ColumnsContent)
	require.True(t, ok)
	assert.Equal(t, 3, columns.ColumnCount)
	assert.Equal(t, page.ColImage, columns.ColType)
	assert.Nil(t, columns.Items[0].Image)

	container := doc.Sections[3]
	assert.Equal(t, "image", container.BgType)
	assert.Equal(t, 0.5, container.BgOverlay)
	require.Len(t, container.Children, 2)
	img, ok := container.Children[1].Content.(*page.ImageContent)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/pic.jpg", img.Image.URL)
	assert.Equal(t, "pic", img.Image.Alt)

	faq, ok := doc.Sections[4].Content.(*page.FAQContent)
	require.True(t, ok)
	require.Len(t, faq.FAQs, 1)
	assert.Equal(t, "Why?", faq.FAQs[0].Question)
	assert.Equal(t, "Because.", faq.FAQs[0].Answer)

	unknown := doc.Sections[5]
	assert.IsType(t, &page.UnknownContent{}, unknown.Content)
	assert.Equal(t, []any{1.0, 2.0}, unknown.Extra["whatever"])

	assert.Equal(t, "https://example.com/gen.jpg", doc.Hero.URL)
	assert.Equal(t, 1.4, doc.FontSizes.HeroTitle)
}

func TestDecode_Malformed(t *testing.T) {
	for _, in := range []string{`not json`, `[]`, `{}`, `{"sections": {}}`, `null`} {
		_, err := Decode([]byte(in))
		assert.ErrorIs(t, err, ErrMalformedDocument, in)
	}
}

func TestDecodeYAML(t *testing.T) {
	doc, err := DecodeYAML([]byte(`
siteTitle: From YAML
sections:
  - id: 1
    type: cta
    heading: Join us
    buttons:
      - text: Sign up
        url: /signup
`))
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	panel, ok := doc.Sections[0].Content.(*page.ConversionPanelContent)
	require.True(t, ok)
	assert.Equal(t, "Join us", panel.Heading)
	require.Len(t, panel.Buttons, 1)
	assert.Equal(t, page.ItemID("1-buttons-0"), panel.Buttons[0].ID)

	_, err = DecodeYAML([]byte("siteTitle: [unclosed"))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestInspect(t *testing.T) {
	report := Inspect(parse(t, messyDocument))

	assert.False(t, report.Clean())
	var aliased []string
	for _, c := range report.Aliased {
		aliased = append(aliased, c.From+"->"+c.To)
	}
	assert.Equal(t, []string{"plans->pricing", "gallery->columns", "paragraph->text", "hero_image->image", "qa->faq"}, aliased)
	require.Len(t, report.Unknown, 1)
	assert.Equal(t, "not_a_real_type", report.Unknown[0].From)

	assert.True(t, Inspect(map[string]any{"sections": []any{map[string]any{"type": "text"}}}).Clean())
}
